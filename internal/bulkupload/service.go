package bulkupload

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/clubvision/clubvision/internal/user"
)

// Row validation messages, part of the report contract
const (
	msgNoHeaders    = "CSV file has no headers"
	msgPhoneMissing = "Phone number is required"
	msgPhoneLength  = "Phone number must be 10 digits"
)

// UserDirectory resolves and creates user accounts by phone
type UserDirectory interface {
	GetByPhone(ctx context.Context, phone string) (*user.User, error)
	Create(ctx context.Context, phone string, fullName *string) (*user.User, error)
	SetNameIfAbsent(ctx context.Context, id int64, name string) error
}

// DependentDirectory resolves-or-creates dependents by their natural key
// (user, name, relation)
type DependentDirectory interface {
	ResolveOrCreate(ctx context.Context, userID int64, name, relation string) (int64, error)
}

// MembershipLedger resolves-or-creates memberships by their natural key
// (user, club, dependent-or-self). created is false when a membership of any
// status already occupies the key.
type MembershipLedger interface {
	ResolveOrCreate(ctx context.Context, userID, clubID int64, dependentID *int64, expiryDate *string) (int64, bool, error)
}

// Service runs the CSV membership ingestion pipeline
type Service struct {
	users       UserDirectory
	dependents  DependentDirectory
	memberships MembershipLedger
	logger      *zap.Logger
}

// NewService creates a new bulk upload service with collaborators injected
func NewService(users UserDirectory, dependents DependentDirectory, memberships MembershipLedger, logger *zap.Logger) *Service {
	return &Service{
		users:       users,
		dependents:  dependents,
		memberships: memberships,
		logger:      logger,
	}
}

// Process ingests one CSV document of membership rows for a club and returns
// the per-row report. Row failures never abort the remaining rows; the report
// itself always has Success true.
func (s *Service) Process(ctx context.Context, clubID int64, r io.Reader) *Report {
	report := NewReport()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			report.addError(1, "", msgNoHeaders)
		} else {
			report.addError(1, "", err.Error())
		}
		return report
	}

	columns := headerIndex(header)

	// Row 1 is the header; data rows are 1-indexed from 2.
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			report.addError(rowNum, "", err.Error())
			continue
		}

		s.processRow(ctx, report, clubID, rowNum, columns, record)
	}

	report.finalize()

	s.logger.Info("bulk upload processed",
		zap.Int64("club_id", clubID),
		zap.Int("total_rows", report.Summary.TotalRows),
		zap.Int("created", report.Summary.Created),
		zap.Int("skipped", report.Summary.Skipped),
		zap.Int("errors", report.Summary.Errors),
	)

	return report
}

// processRow validates one data row and resolves its user, dependent, and
// membership records, recording exactly one outcome on the report
func (s *Service) processRow(ctx context.Context, report *Report, clubID int64, rowNum int, columns map[string]int, record []string) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	phone := field(fieldPhone)
	name := field(fieldName)
	relation := field(fieldRelation)

	var expiryDate *string
	if expiry := field(fieldExpiry); expiry != "" {
		expiryDate = &expiry
	}

	if phone == "" {
		report.addError(rowNum, phone, msgPhoneMissing)
		return
	}
	if !isTenDigits(phone) {
		report.addError(rowNum, phone, msgPhoneLength)
		return
	}

	userID, userName, err := s.resolveUser(ctx, phone, name, relation)
	if err != nil {
		report.addError(rowNum, phone, err.Error())
		return
	}

	var dependentID *int64
	switch {
	case name != "" && relation != "":
		// Dependent row: resolve-or-create by (user, name, relation).
		id, err := s.dependents.ResolveOrCreate(ctx, userID, name, relation)
		if err != nil {
			report.addError(rowNum, phone, err.Error())
			return
		}
		dependentID = &id
	case name != "":
		// Self row with a name: first non-null write wins, never overwrite.
		if userName == nil {
			if err := s.users.SetNameIfAbsent(ctx, userID, name); err != nil {
				report.addError(rowNum, phone, err.Error())
				return
			}
		}
	}

	membershipID, created, err := s.memberships.ResolveOrCreate(ctx, userID, clubID, dependentID, expiryDate)
	if err != nil {
		report.addError(rowNum, phone, err.Error())
		return
	}

	member := "Self"
	if dependentID != nil {
		member = fmt.Sprintf("%s (%s)", name, relation)
	}

	if created {
		report.addCreated(rowNum, phone, member, membershipID)
	} else {
		report.addSkipped(rowNum, phone, member, membershipID)
	}
}

// resolveUser looks the user up by phone, creating one if absent. A new user
// gets the row's name only when the row is a self row carrying a name.
func (s *Service) resolveUser(ctx context.Context, phone, name, relation string) (int64, *string, error) {
	existing, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		return 0, nil, err
	}
	if existing != nil {
		return existing.ID, existing.FullName, nil
	}

	var createName *string
	if name != "" && relation == "" {
		createName = &name
	}

	created, err := s.users.Create(ctx, phone, createName)
	if err != nil {
		return 0, nil, err
	}

	return created.ID, created.FullName, nil
}

func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
