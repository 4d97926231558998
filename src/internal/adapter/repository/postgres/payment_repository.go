package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/logger"
	"github.com/lib/pq"
)

const paymentColumns = `id, customer_id, recipient_name, recipient_bank, recipient_account_no, amount, swift_code,
	verified, verified_by, verification_notes, verification_date,
	submitted, submitted_by, submission_date, created_at, updated_at`

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Insert(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	logger.Info("payment repository insert", logger.Fields{
		"paymentId":  payment.ID,
		"customerId": payment.CustomerID,
	})

	const query = `
INSERT INTO payments (
	id,
	customer_id,
	recipient_name,
	recipient_bank,
	recipient_account_no,
	amount,
	swift_code,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + paymentColumns

	var created domain.Payment
	if err := scanPayment(executorFrom(ctx, r.db).QueryRowContext(
		ctx,
		query,
		payment.ID,
		payment.CustomerID,
		payment.RecipientName,
		payment.RecipientBank,
		payment.RecipientAccountNo,
		payment.Amount,
		payment.SwiftCode,
		payment.CreatedAt,
		payment.UpdatedAt,
	), &created); err != nil {
		logger.Error("payment repository insert failed", err, logger.Fields{"paymentId": payment.ID})
		return domain.Payment{}, fmt.Errorf("insert payment: %w", err)
	}

	return created, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (domain.Payment, error) {
	query := `
SELECT ` + paymentColumns + `
FROM payments
WHERE id = $1`

	var payment domain.Payment
	if err := scanPayment(executorFrom(ctx, r.db).QueryRowContext(ctx, query, id), &payment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("payment repository record not found", logger.Fields{"paymentId": id})
			return domain.Payment{}, domain.ErrRecordNotFound
		}
		logger.Error("payment repository find by id failed", err, logger.Fields{"paymentId": id})
		return domain.Payment{}, fmt.Errorf("find payment by id: %w", err)
	}

	return payment, nil
}

func (r *PaymentRepository) FindMany(ctx context.Context, filter domain.PaymentFilter, sort domain.PaymentSort) ([]domain.Payment, error) {
	conditions, args := paymentConditions(filter, nil)

	query := `
SELECT ` + paymentColumns + `
FROM payments`
	if len(conditions) > 0 {
		query += "\nWHERE " + strings.Join(conditions, "\n  AND ")
	}
	if sort == domain.SortCreatedDesc {
		query += "\nORDER BY created_at DESC, id DESC"
	}

	rows, err := executorFrom(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("payment repository find many failed", err, nil)
		return nil, fmt.Errorf("find payments: %w", err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		if err := scanPayment(rows, &payment); err != nil {
			logger.Error("payment repository scan payment failed", err, nil)
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		logger.Error("payment repository iterate payments failed", err, nil)
		return nil, fmt.Errorf("iterate payments: %w", err)
	}

	return payments, nil
}

func (r *PaymentRepository) UpdateOne(ctx context.Context, id string, patch domain.PaymentPatch, cond domain.PaymentFilter) (bool, error) {
	assignments, args, err := paymentAssignments(patch)
	if err != nil {
		return false, err
	}

	args = append(args, id)
	conditions := []string{fmt.Sprintf("id = $%d", len(args))}
	conditions, args = paymentConditions(cond, args, conditions...)

	query := "UPDATE payments\nSET " + strings.Join(assignments, ",\n    ") +
		"\nWHERE " + strings.Join(conditions, "\n  AND ")

	affected, err := execRowsAffected(ctx, executorFrom(ctx, r.db), query, args...)
	if err != nil {
		logger.Error("payment repository update one failed", err, logger.Fields{"paymentId": id})
		return false, fmt.Errorf("update payment: %w", err)
	}

	return affected == 1, nil
}

func (r *PaymentRepository) UpdateMany(ctx context.Context, ids []string, patch domain.PaymentPatch, cond domain.PaymentFilter) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	assignments, args, err := paymentAssignments(patch)
	if err != nil {
		return 0, err
	}

	args = append(args, pq.Array(ids))
	conditions := []string{fmt.Sprintf("id = ANY($%d::uuid[])", len(args))}
	conditions, args = paymentConditions(cond, args, conditions...)

	query := "UPDATE payments\nSET " + strings.Join(assignments, ",\n    ") +
		"\nWHERE " + strings.Join(conditions, "\n  AND ")

	affected, err := execRowsAffected(ctx, executorFrom(ctx, r.db), query, args...)
	if err != nil {
		logger.Error("payment repository update many failed", err, logger.Fields{"paymentIds": ids})
		return 0, fmt.Errorf("update payments: %w", err)
	}

	logger.Info("payment repository update many success", logger.Fields{
		"requested": len(ids),
		"matched":   affected,
	})

	return affected, nil
}

// paymentConditions appends the SQL predicates for filter to conditions,
// numbering placeholders after the arguments already present in args.
func paymentConditions(filter domain.PaymentFilter, args []any, conditions ...string) ([]string, []any) {
	if len(filter.IDs) > 0 {
		args = append(args, pq.Array(filter.IDs))
		conditions = append(conditions, fmt.Sprintf("id = ANY($%d::uuid[])", len(args)))
	}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		conditions = append(conditions, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	switch filter.Verification {
	case domain.VerificationUnset:
		conditions = append(conditions, "verified IS NULL")
	case domain.VerificationApproved:
		conditions = append(conditions, "verified IS TRUE")
	case domain.VerificationRejected:
		conditions = append(conditions, "verified IS FALSE")
	case domain.VerificationNotRejected:
		conditions = append(conditions, "verified IS DISTINCT FROM FALSE")
	}
	if filter.Submitted != nil {
		args = append(args, *filter.Submitted)
		conditions = append(conditions, fmt.Sprintf("submitted = $%d", len(args)))
	}
	return conditions, args
}

func paymentAssignments(patch domain.PaymentPatch) ([]string, []any, error) {
	var (
		assignments []string
		args        []any
	)

	set := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if v := patch.Verification; v != nil {
		set("verified", v.Approved)
		set("verified_by", v.By)
		set("verification_notes", v.Notes)
		set("verification_date", v.At)
		set("updated_at", v.At)
	}
	if s := patch.Submission; s != nil {
		assignments = append(assignments, "submitted = TRUE")
		set("submitted_by", s.By)
		set("submission_date", s.At)
		if patch.Verification == nil {
			set("updated_at", s.At)
		}
	}

	if len(assignments) == 0 {
		return nil, nil, errors.New("empty payment patch")
	}
	return assignments, args, nil
}

func execRowsAffected(ctx context.Context, exec executor, query string, args ...any) (int64, error) {
	result, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read rows affected: %w", err)
	}
	return rows, nil
}

func scanPayment(row rowScanner, payment *domain.Payment) error {
	var (
		verified         sql.NullBool
		verifiedBy       sql.NullString
		notes            sql.NullString
		verificationDate sql.NullTime
		submittedBy      sql.NullString
		submissionDate   sql.NullTime
	)

	if err := row.Scan(
		&payment.ID,
		&payment.CustomerID,
		&payment.RecipientName,
		&payment.RecipientBank,
		&payment.RecipientAccountNo,
		&payment.Amount,
		&payment.SwiftCode,
		&verified,
		&verifiedBy,
		&notes,
		&verificationDate,
		&payment.Submitted,
		&submittedBy,
		&submissionDate,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	); err != nil {
		return err
	}

	payment.Verified = nil
	if verified.Valid {
		value := verified.Bool
		payment.Verified = &value
	}
	payment.VerifiedBy = nullString(verifiedBy)
	payment.VerificationNotes = nullString(notes)
	payment.VerificationDate = nil
	if verificationDate.Valid {
		value := verificationDate.Time
		payment.VerificationDate = &value
	}
	payment.SubmittedBy = nullString(submittedBy)
	payment.SubmissionDate = nil
	if submissionDate.Valid {
		value := submissionDate.Time
		payment.SubmissionDate = &value
	}

	return nil
}

func nullString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}
