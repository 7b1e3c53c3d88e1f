// Package scope provides row-level access filtering for financial
// entities. It is the single source of truth for what a user may see:
// every listing, search, and stats query must go through a Resolver so
// that visibility rules are never re-implemented per call site.
//
// Rule hierarchy, first match wins:
//  1. Superuser or "<resource>.list_all" permission: unrestricted.
//  2. "<resource>.list" permission: rows the user owns directly, or
//     rows linked to a portfolio the user owns.
//  3. Otherwise: the empty set.
//
// Debts and recoveries derive their scope transitively from the visible
// sales; a debt is visible iff its sale is, a recovery iff its term's
// debt is.
package scope

import (
	"gorm.io/gorm"

	"creditflow/internal/models"
)

// Permission codes consumed by the resolver. ListAll grants the
// unrestricted view; List grants the ownership-scoped view.
const (
	PermSaleList        = "creditsale.list"
	PermSaleListAll     = "creditsale.list_all"
	PermCustomerList    = "customer.list"
	PermCustomerListAll = "customer.list_all"
	PermDebtList        = "debt.list"
	PermDebtListAll     = "debt.list_all"
	PermRecoveryList    = "recovery.list"
	PermRecoveryListAll = "recovery.list_all"
)

// Resolver computes visibility scopes for one authenticated user.
// It is a pure function of the user's roles and ownership; it never
// mutates anything.
type Resolver struct {
	user *models.User
}

// NewResolver creates a Resolver for the given user. Roles and their
// permissions must be preloaded on the user.
func NewResolver(user *models.User) *Resolver {
	return &Resolver{user: user}
}

func (r *Resolver) viewAll(code string) bool {
	return r.user.IsSuperuser || r.user.HasPermission(code)
}

// none restricts a query to the empty set.
func none(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

// HasAnySaleAccess reports whether the user's sale scope is non-empty by
// construction. Targeted single-entity operations use this to
// distinguish "no access at all" from "row outside your scope".
func (r *Resolver) HasAnySaleAccess() bool {
	return r.viewAll(PermSaleListAll) || r.user.HasPermission(PermSaleList)
}

// Sales returns a GORM scope limiting a credit_sales query to the rows
// the user may see.
func (r *Resolver) Sales() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if r.viewAll(PermSaleListAll) {
			return db
		}
		if !r.user.HasPermission(PermSaleList) {
			return none(db)
		}
		return db.Where(
			"credit_sales.commercial_id = ? OR credit_sales.portfolio_id IN (SELECT id FROM portfolios WHERE commercial_id = ?)",
			r.user.ID, r.user.ID,
		)
	}
}

// Debts returns a GORM scope limiting a debts query to debts whose sale
// is visible to the user.
func (r *Resolver) Debts() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if r.viewAll(PermDebtListAll) {
			return db
		}
		if !r.user.HasPermission(PermDebtList) {
			return none(db)
		}
		return db.Where("debts.sale_id IN ("+visibleSalesSQL+")", r.user.ID, r.user.ID)
	}
}

// Recoveries returns a GORM scope limiting a recoveries query to
// recoveries on terms of visible debts.
func (r *Resolver) Recoveries() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if r.viewAll(PermRecoveryListAll) {
			return db
		}
		if !r.user.HasPermission(PermRecoveryList) {
			return none(db)
		}
		return db.Where(
			"recoveries.term_id IN (SELECT id FROM terms WHERE debt_id IN (SELECT id FROM debts WHERE sale_id IN ("+visibleSalesSQL+")))",
			r.user.ID, r.user.ID,
		)
	}
}

// Customers returns a GORM scope limiting a customers query to customers
// in portfolios the user owns.
func (r *Resolver) Customers() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if r.viewAll(PermCustomerListAll) {
			return db
		}
		if !r.user.HasPermission(PermCustomerList) {
			return none(db)
		}
		return db.Where(
			"customers.portfolio_id IN (SELECT id FROM portfolios WHERE commercial_id = ?)",
			r.user.ID,
		)
	}
}

// visibleSalesSQL is the ownership rule on sales as a subquery, reused
// by the transitive debt and recovery scopes. Takes two user-ID binds.
const visibleSalesSQL = "SELECT id FROM credit_sales WHERE commercial_id = ? OR portfolio_id IN (SELECT id FROM portfolios WHERE commercial_id = ?)"
