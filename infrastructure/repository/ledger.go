package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/lumenaura/order-manager-api/infrastructure/database/postgres"
	"github.com/lumenaura/order-manager-api/internal/domain"
)

const (
	ledgerRecordsTable = "ledger_records"
)

type LedgerRepository interface {
	Upsert(record *domain.LedgerRecord) error
	GetByLineID(lineID string) (*domain.LedgerRecord, error)
	ListAll(filters *domain.LedgerFilters) ([]*domain.LedgerRecord, error)
	MarkRefunded(lineID string) error
	GetSummary() (*domain.LedgerSummary, error)
}

type ledgerRepository struct {
	conn *postgres.Connection
}

func NewLedgerRepository(conn *postgres.Connection) LedgerRepository {
	return &ledgerRepository{
		conn: conn,
	}
}

// Upsert grava o registro de forma idempotente: o mesmo line_id nunca gera
// uma segunda linha, apenas atualiza a existente com os valores mais recentes.
func (r *ledgerRepository) Upsert(record *domain.LedgerRecord) error {
	query := squirrel.StatementBuilder.
		Insert(ledgerRecordsTable).
		Columns("line_id", "customer_ref", "product_name", "unit_price", "supplier_cost", "profit", "status").
		Values(
			record.LineID,
			record.CustomerRef,
			record.ProductName,
			record.UnitPrice,
			record.SupplierCost,
			record.Profit,
			record.Status,
		).
		Suffix(`
			ON CONFLICT (line_id) DO UPDATE SET
				customer_ref = EXCLUDED.customer_ref,
				product_name = EXCLUDED.product_name,
				unit_price = EXCLUDED.unit_price,
				supplier_cost = EXCLUDED.supplier_cost,
				profit = EXCLUDED.profit,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *ledgerRepository) GetByLineID(lineID string) (*domain.LedgerRecord, error) {
	query, args, err := squirrel.
		Select("lr.line_id, lr.customer_ref, lr.product_name, lr.unit_price, lr.supplier_cost, lr.profit, lr.status, lr.created_at, lr.updated_at").
		From(ledgerRecordsTable + " lr").
		Where(squirrel.Eq{"lr.line_id": lineID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record := &domain.LedgerRecord{}
	err = r.conn.QueryRow(query, args...).Scan(
		&record.LineID,
		&record.CustomerRef,
		&record.ProductName,
		&record.UnitPrice,
		&record.SupplierCost,
		&record.Profit,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro do ledger: %w", err)
	}

	return record, nil
}

func (r *ledgerRepository) ListAll(filters *domain.LedgerFilters) ([]*domain.LedgerRecord, error) {
	queryBuilder := squirrel.
		Select("lr.line_id, lr.customer_ref, lr.product_name, lr.unit_price, lr.supplier_cost, lr.profit, lr.status, lr.created_at, lr.updated_at").
		From(ledgerRecordsTable + " lr").
		OrderBy("lr.created_at ASC")

	if filters != nil {
		if filters.Status != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"lr.status": *filters.Status})
		}
		if filters.StartDate != nil && !filters.StartDate.IsZero() {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"lr.created_at": filters.StartDate.Format(time.DateOnly)})
		}
		if filters.EndDate != nil && !filters.EndDate.IsZero() {
			queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"lr.created_at": filters.EndDate.Format(time.DateOnly)})
		}
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.LedgerRecord, 0)
	for rows.Next() {
		record := &domain.LedgerRecord{}
		err := rows.Scan(
			&record.LineID,
			&record.CustomerRef,
			&record.ProductName,
			&record.UnitPrice,
			&record.SupplierCost,
			&record.Profit,
			&record.Status,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registros do ledger: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// MarkRefunded transiciona o status para refunded sem tocar nos demais campos
func (r *ledgerRepository) MarkRefunded(lineID string) error {
	query, args, err := squirrel.
		Update(ledgerRecordsTable).
		Set("status", domain.LedgerStatusRefunded).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"line_id": lineID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrLedgerRecordNotFound
	}

	return nil
}

func (r *ledgerRepository) GetSummary() (*domain.LedgerSummary, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE status = 'refunded')",
			"COALESCE(SUM(unit_price), 0)",
			"COALESCE(SUM(profit), 0)",
		).
		From(ledgerRecordsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.LedgerSummary{}
	err = r.conn.QueryRow(query, args...).Scan(
		&summary.TotalRecords,
		&summary.RefundedCount,
		&summary.TotalSales,
		&summary.TotalProfit,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear resumo do ledger: %w", err)
	}

	return summary, nil
}
