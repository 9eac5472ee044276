package bulkupload

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clubvision/clubvision/internal/user"
)

type fakeUsers struct {
	byPhone map[string]*user.User
	nextID  int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byPhone: make(map[string]*user.User)}
}

func (f *fakeUsers) GetByPhone(_ context.Context, phone string) (*user.User, error) {
	return f.byPhone[phone], nil
}

func (f *fakeUsers) Create(_ context.Context, phone string, fullName *string) (*user.User, error) {
	f.nextID++
	u := &user.User{ID: f.nextID, Phone: phone, FullName: fullName}
	f.byPhone[phone] = u
	return u, nil
}

func (f *fakeUsers) SetNameIfAbsent(_ context.Context, id int64, name string) error {
	for _, u := range f.byPhone {
		if u.ID == id && u.FullName == nil {
			n := name
			u.FullName = &n
		}
	}
	return nil
}

type dependentKey struct {
	userID         int64
	name, relation string
}

type fakeDependents struct {
	byKey  map[dependentKey]int64
	nextID int64
}

func newFakeDependents() *fakeDependents {
	return &fakeDependents{byKey: make(map[dependentKey]int64)}
}

func (f *fakeDependents) ResolveOrCreate(_ context.Context, userID int64, name, relation string) (int64, error) {
	key := dependentKey{userID, name, relation}
	if id, ok := f.byKey[key]; ok {
		return id, nil
	}
	f.nextID++
	f.byKey[key] = f.nextID
	return f.nextID, nil
}

type membershipKey struct {
	userID, clubID int64
	dependentID    int64 // 0 = self
}

type fakeMemberships struct {
	byKey  map[membershipKey]int64
	nextID int64
	err    error // when set, ResolveOrCreate fails
}

func newFakeMemberships() *fakeMemberships {
	return &fakeMemberships{byKey: make(map[membershipKey]int64)}
}

func (f *fakeMemberships) ResolveOrCreate(_ context.Context, userID, clubID int64, dependentID *int64, _ *string) (int64, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	key := membershipKey{userID: userID, clubID: clubID}
	if dependentID != nil {
		key.dependentID = *dependentID
	}
	if id, ok := f.byKey[key]; ok {
		return id, false, nil
	}
	f.nextID++
	f.byKey[key] = f.nextID
	return f.nextID, true, nil
}

type fixture struct {
	users       *fakeUsers
	dependents  *fakeDependents
	memberships *fakeMemberships
	service     *Service
}

func newFixture() *fixture {
	users := newFakeUsers()
	dependents := newFakeDependents()
	memberships := newFakeMemberships()
	return &fixture{
		users:       users,
		dependents:  dependents,
		memberships: memberships,
		service:     NewService(users, dependents, memberships, zap.NewNop()),
	}
}

func (f *fixture) process(t *testing.T, csv string) *Report {
	t.Helper()
	return f.service.Process(context.Background(), 1, strings.NewReader(csv))
}

func assertSummaryConsistent(t *testing.T, report *Report) {
	t.Helper()
	assert.Equal(t, report.Summary.Created+report.Summary.Skipped+report.Summary.Errors, report.Summary.TotalRows)
	assert.Len(t, report.Created, report.Summary.Created)
	assert.Len(t, report.Skipped, report.Summary.Skipped)
	assert.Len(t, report.Errors, report.Summary.Errors)
}

func TestProcess_SelfRowCreated(t *testing.T) {
	f := newFixture()

	report := f.process(t, "phone,name,relation,membership_expiry\n9876543210,,,\n")

	require.Len(t, report.Created, 1)
	assert.True(t, report.Success)
	assert.Equal(t, 2, report.Created[0].Row)
	assert.Equal(t, "9876543210", report.Created[0].Phone)
	assert.Equal(t, "Self", report.Created[0].Member)
	assert.Equal(t, 1, report.Summary.TotalRows)
	assertSummaryConsistent(t, report)
}

func TestProcess_DuplicateUploadSkips(t *testing.T) {
	f := newFixture()
	csv := "phone,name,relation,membership_expiry\n9876543210,,,\n"

	first := f.process(t, csv)
	second := f.process(t, csv)

	require.Len(t, first.Created, 1)
	require.Len(t, second.Skipped, 1)
	assert.Empty(t, second.Created)
	assert.Equal(t, "Membership already exists", second.Skipped[0].Reason)
	assert.Equal(t, first.Created[0].MembershipID, second.Skipped[0].MembershipID)
}

func TestProcess_DependentRowsIdempotent(t *testing.T) {
	f := newFixture()
	csv := "phone,name,relation\n9876543210,Kabir,son\n"

	first := f.process(t, csv)
	second := f.process(t, csv)

	require.Len(t, first.Created, 1)
	assert.Equal(t, "Kabir (son)", first.Created[0].Member)

	require.Len(t, second.Skipped, 1)
	assert.Equal(t, "Kabir (son)", second.Skipped[0].Member)

	// Identical (phone, name, relation) must reuse the same dependent.
	assert.Len(t, f.dependents.byKey, 1)
}

func TestProcess_HeaderVariants(t *testing.T) {
	f := newFixture()

	// BOM on the first header, arbitrary case and whitespace elsewhere.
	report := f.process(t, "\ufeff PHONE , Name ,RELATION, Membership_Expiry \n9876543210,Kabir,son,2026-12-31\n")

	require.Len(t, report.Created, 1)
	assert.Equal(t, "Kabir (son)", report.Created[0].Member)
	assert.Empty(t, report.Errors)
}

func TestProcess_PhoneValidation(t *testing.T) {
	f := newFixture()

	report := f.process(t, "phone,name\n,\n12345,\nabcdefghij,\n")

	require.Len(t, report.Errors, 3)
	assert.Equal(t, "Phone number is required", report.Errors[0].Error)
	assert.Equal(t, 2, report.Errors[0].Row)
	assert.Equal(t, "Phone number must be 10 digits", report.Errors[1].Error)
	assert.Equal(t, "12345", report.Errors[1].Phone)
	assert.Equal(t, "Phone number must be 10 digits", report.Errors[2].Error)

	// Invalid rows must have no side effects.
	assert.Empty(t, f.users.byPhone)
	assertSummaryConsistent(t, report)
}

func TestProcess_SelfRowSetsNameOnCreate(t *testing.T) {
	f := newFixture()

	f.process(t, "phone,name\n9876543210,Asha\n")

	u := f.users.byPhone["9876543210"]
	require.NotNil(t, u)
	require.NotNil(t, u.FullName)
	assert.Equal(t, "Asha", *u.FullName)
}

func TestProcess_NameFirstWriteWins(t *testing.T) {
	f := newFixture()

	f.process(t, "phone,name\n9876543210,Asha\n")
	f.process(t, "phone,name\n9876543210,Asha2\n")

	u := f.users.byPhone["9876543210"]
	require.NotNil(t, u)
	require.NotNil(t, u.FullName)
	assert.Equal(t, "Asha", *u.FullName)
}

func TestProcess_DependentRowDoesNotNameUser(t *testing.T) {
	f := newFixture()

	// A new user discovered through a dependent row stays nameless.
	f.process(t, "phone,name,relation\n9876543210,Kabir,son\n")

	u := f.users.byPhone["9876543210"]
	require.NotNil(t, u)
	assert.Nil(t, u.FullName)
}

func TestProcess_EmptyCSV(t *testing.T) {
	f := newFixture()

	report := f.process(t, "")

	assert.True(t, report.Success)
	assert.Equal(t, 0, report.Summary.TotalRows)
	assert.Equal(t, 1, report.Summary.Errors)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 1, report.Errors[0].Row)
	assert.Equal(t, "CSV file has no headers", report.Errors[0].Error)
	assert.Empty(t, report.Created)
	assert.Empty(t, report.Skipped)
}

func TestProcess_HeaderOnly(t *testing.T) {
	f := newFixture()

	report := f.process(t, "phone,name,relation,membership_expiry\n")

	assert.Equal(t, 0, report.Summary.TotalRows)
	assert.Empty(t, report.Errors)
}

func TestProcess_RowErrorDoesNotAbortRemainingRows(t *testing.T) {
	f := newFixture()
	f.memberships.err = errors.New("connection reset")

	report := f.process(t, "phone\n9876543210\n9876543211\n")

	require.Len(t, report.Errors, 2)
	assert.Equal(t, "connection reset", report.Errors[0].Error)
	assert.Equal(t, 2, report.Errors[0].Row)
	assert.Equal(t, 3, report.Errors[1].Row)
	assert.Equal(t, "9876543211", report.Errors[1].Phone)
	assertSummaryConsistent(t, report)
}

func TestProcess_MixedOutcomes(t *testing.T) {
	f := newFixture()

	// Seed an existing membership so the first row skips.
	f.process(t, "phone\n9876543210\n")

	report := f.process(t, "phone,name,relation\n9876543210,,\n9876543211,Kabir,son\n555,,\n")

	assert.Equal(t, 3, report.Summary.TotalRows)
	assert.Equal(t, 1, report.Summary.Created)
	assert.Equal(t, 1, report.Summary.Skipped)
	assert.Equal(t, 1, report.Summary.Errors)
	assertSummaryConsistent(t, report)
}

func TestProcess_ExpiryPassedOnlyWhenPresent(t *testing.T) {
	users := newFakeUsers()
	dependents := newFakeDependents()

	var gotExpiry *string
	ledger := ledgerFunc(func(_ context.Context, _, _ int64, _ *int64, expiry *string) (int64, bool, error) {
		gotExpiry = expiry
		return 1, true, nil
	})
	service := NewService(users, dependents, ledger, zap.NewNop())

	service.Process(context.Background(), 1, strings.NewReader("phone,membership_expiry\n9876543210,2026-12-31\n"))
	require.NotNil(t, gotExpiry)
	assert.Equal(t, "2026-12-31", *gotExpiry)

	service.Process(context.Background(), 1, strings.NewReader("phone,membership_expiry\n9876543211,\n"))
	assert.Nil(t, gotExpiry)
}

type ledgerFunc func(ctx context.Context, userID, clubID int64, dependentID *int64, expiryDate *string) (int64, bool, error)

func (f ledgerFunc) ResolveOrCreate(ctx context.Context, userID, clubID int64, dependentID *int64, expiryDate *string) (int64, bool, error) {
	return f(ctx, userID, clubID, dependentID, expiryDate)
}
