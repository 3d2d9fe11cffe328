package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// RequiredPrivileges are the table privileges the connector role needs.
var RequiredPrivileges = map[string][]string{
	"carts":                {"SELECT", "UPDATE"},
	"cart_payments":        {"SELECT", "INSERT"},
	"payments":             {"SELECT", "INSERT", "UPDATE"},
	"payment_transactions": {"SELECT", "INSERT"},
}

// CheckPermissions verifies the current role holds every required privilege.
// The returned details are meant for the status endpoint.
func (db *DB) CheckPermissions(ctx context.Context) (map[string]any, error) {
	var tables, privileges []string
	for table, privs := range RequiredPrivileges {
		for _, p := range privs {
			tables = append(tables, table)
			privileges = append(privileges, p)
		}
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT t.tbl, t.priv, has_table_privilege(current_user, t.tbl, t.priv)
		FROM unnest($1::text[], $2::text[]) AS t(tbl, priv)
	`, tables, privileges)
	if err != nil {
		return nil, fmt.Errorf("query table privileges: %w", err)
	}

	type grant struct {
		table, privilege string
		held             bool
	}
	grants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (grant, error) {
		var g grant
		err := row.Scan(&g.table, &g.privilege, &g.held)
		return g, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan table privileges: %w", err)
	}

	var missing []string
	for _, g := range grants {
		if !g.held {
			missing = append(missing, g.table+":"+g.privilege)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing privileges: %s", strings.Join(missing, ", "))
	}

	return map[string]any{"privileges": len(grants)}, nil
}
