package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/contactdesk/contacts-api/internal/core/domain"
	"github.com/contactdesk/contacts-api/internal/core/ports"
)

type stubContactRepo struct {
	contacts map[int64]*domain.Contact
	nextID   int64
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{contacts: make(map[int64]*domain.Contact)}
}

func (r *stubContactRepo) Create(_ context.Context, contact *domain.Contact) error {
	r.nextID++
	contact.ID = r.nextID
	clone := *contact
	r.contacts[contact.ID] = &clone
	return nil
}

func (r *stubContactRepo) FindByID(_ context.Context, userID, contactID int64) (*domain.Contact, error) {
	c, ok := r.contacts[contactID]
	if !ok || c.UserID != userID {
		return nil, domain.ErrContactNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubContactRepo) Update(_ context.Context, contact *domain.Contact) error {
	c, ok := r.contacts[contact.ID]
	if !ok || c.UserID != contact.UserID {
		return domain.ErrContactNotFound
	}
	clone := *contact
	r.contacts[contact.ID] = &clone
	return nil
}

func (r *stubContactRepo) Delete(_ context.Context, userID, contactID int64) error {
	c, ok := r.contacts[contactID]
	if !ok || c.UserID != userID {
		return domain.ErrContactNotFound
	}
	delete(r.contacts, contactID)
	return nil
}

func (r *stubContactRepo) Search(_ context.Context, filter ports.SearchContactsFilter) ([]*domain.Contact, int64, error) {
	contains := func(haystack, needle string) bool {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}

	matches := make([]*domain.Contact, 0)
	for _, c := range r.contacts {
		if c.UserID != filter.UserID {
			continue
		}
		if filter.Name != "" && !contains(c.FirstName, filter.Name) && !contains(c.LastName, filter.Name) {
			continue
		}
		if filter.Email != "" && !contains(c.Email, filter.Email) {
			continue
		}
		if filter.Phone != "" && !contains(c.Phone, filter.Phone) {
			continue
		}
		clone := *c
		matches = append(matches, &clone)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })

	total := int64(len(matches))
	start := (filter.Page - 1) * filter.Size
	if start >= len(matches) {
		return []*domain.Contact{}, total, nil
	}
	end := start + filter.Size
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end], total, nil
}

type stubAddressRepo struct {
	addresses map[int64]*domain.Address
	nextID    int64
}

func newStubAddressRepo() *stubAddressRepo {
	return &stubAddressRepo{addresses: make(map[int64]*domain.Address)}
}

func (r *stubAddressRepo) Create(_ context.Context, address *domain.Address) error {
	r.nextID++
	address.ID = r.nextID
	clone := *address
	r.addresses[address.ID] = &clone
	return nil
}

func (r *stubAddressRepo) FindByID(_ context.Context, contactID, addressID int64) (*domain.Address, error) {
	a, ok := r.addresses[addressID]
	if !ok || a.ContactID != contactID {
		return nil, domain.ErrAddressNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAddressRepo) Update(_ context.Context, address *domain.Address) error {
	a, ok := r.addresses[address.ID]
	if !ok || a.ContactID != address.ContactID {
		return domain.ErrAddressNotFound
	}
	clone := *address
	r.addresses[address.ID] = &clone
	return nil
}

func (r *stubAddressRepo) Delete(_ context.Context, contactID, addressID int64) error {
	a, ok := r.addresses[addressID]
	if !ok || a.ContactID != contactID {
		return domain.ErrAddressNotFound
	}
	delete(r.addresses, addressID)
	return nil
}

func (r *stubAddressRepo) ListByContact(_ context.Context, contactID int64) ([]*domain.Address, error) {
	out := make([]*domain.Address, 0)
	for _, a := range r.addresses {
		if a.ContactID == contactID {
			clone := *a
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAddressRepo) DeleteByContact(_ context.Context, contactID int64) error {
	for id, a := range r.addresses {
		if a.ContactID == contactID {
			delete(r.addresses, id)
		}
	}
	return nil
}

type stubRecorder struct {
	events []domain.ActivityEvent
}

func (r *stubRecorder) Record(event domain.ActivityEvent) {
	r.events = append(r.events, event)
}

func testUser(id int64) *domain.User {
	return &domain.User{ID: id, Username: fmt.Sprintf("user%d", id), Name: "Test"}
}

func newContactService(contacts *stubContactRepo, addresses *stubAddressRepo, rec *stubRecorder) *ContactService {
	return NewContactService(contacts, addresses, rec, zerolog.Nop())
}

func TestContactService_CrossUserGetIsNotFound(t *testing.T) {
	contacts := newStubContactRepo()
	svc := newContactService(contacts, newStubAddressRepo(), &stubRecorder{})

	owner := testUser(1)
	other := testUser(2)

	created, err := svc.Create(context.Background(), owner, ports.ContactInput{FirstName: "x"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), other, created.ID); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound for foreign contact, got %v", err)
	}
	if _, err := svc.Get(context.Background(), owner, created.ID+100); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound for missing contact, got %v", err)
	}
}

func TestContactService_CrossUserMutationsAreNotFound(t *testing.T) {
	contacts := newStubContactRepo()
	svc := newContactService(contacts, newStubAddressRepo(), &stubRecorder{})

	owner := testUser(1)
	other := testUser(2)
	created, _ := svc.Create(context.Background(), owner, ports.ContactInput{FirstName: "x"})

	if _, err := svc.Update(context.Background(), other, created.ID, ports.ContactInput{FirstName: "y"}); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound on foreign update, got %v", err)
	}
	if err := svc.Delete(context.Background(), other, created.ID); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound on foreign delete, got %v", err)
	}

	// The contact must be untouched.
	got, err := svc.Get(context.Background(), owner, created.ID)
	if err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	if got.FirstName != "x" {
		t.Fatalf("contact mutated by foreign request: %q", got.FirstName)
	}
}

func TestContactService_DeleteCascadesToAddresses(t *testing.T) {
	contacts := newStubContactRepo()
	addresses := newStubAddressRepo()
	svc := newContactService(contacts, addresses, &stubRecorder{})

	owner := testUser(1)
	created, _ := svc.Create(context.Background(), owner, ports.ContactInput{FirstName: "x"})
	_ = addresses.Create(context.Background(), &domain.Address{ContactID: created.ID, Country: "ID", PostalCode: "12345"})
	_ = addresses.Create(context.Background(), &domain.Address{ContactID: created.ID, Country: "ID", PostalCode: "54321"})

	if err := svc.Delete(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	left, _ := addresses.ListByContact(context.Background(), created.ID)
	if len(left) != 0 {
		t.Fatalf("expected address cascade, %d addresses left", len(left))
	}
}

func seedContacts(t *testing.T, svc *ContactService, user *domain.User, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := svc.Create(context.Background(), user, ports.ContactInput{
			FirstName: fmt.Sprintf("first %d", i),
			LastName:  fmt.Sprintf("last %d", i),
			Email:     fmt.Sprintf("test%d@test.com", i),
			Phone:     fmt.Sprintf("1111%d", i),
		})
		if err != nil {
			t.Fatalf("seed contact %d: %v", i, err)
		}
	}
}

func TestContactService_SearchDefaults(t *testing.T) {
	svc := newContactService(newStubContactRepo(), newStubAddressRepo(), &stubRecorder{})
	owner := testUser(1)
	seedContacts(t, svc, owner, 20)

	result, err := svc.Search(context.Background(), owner, ports.SearchContactsInput{})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Items) != 10 {
		t.Fatalf("expected default page size 10, got %d", len(result.Items))
	}
	if result.Total != 20 {
		t.Fatalf("expected total 20, got %d", result.Total)
	}
	if result.Page != 1 || result.Size != 10 {
		t.Fatalf("unexpected paging meta: page=%d size=%d", result.Page, result.Size)
	}
	for i := 1; i < len(result.Items); i++ {
		if result.Items[i].ID <= result.Items[i-1].ID {
			t.Fatalf("items not ordered by ascending ID")
		}
	}
}

func TestContactService_SearchByName(t *testing.T) {
	svc := newContactService(newStubContactRepo(), newStubAddressRepo(), &stubRecorder{})
	owner := testUser(1)
	seedContacts(t, svc, owner, 20)

	for _, q := range []string{"first", "last", "FIRST"} {
		result, err := svc.Search(context.Background(), owner, ports.SearchContactsInput{Name: q})
		if err != nil {
			t.Fatalf("search %q failed: %v", q, err)
		}
		if len(result.Items) != 10 || result.Total != 20 {
			t.Fatalf("search %q: got %d items total %d", q, len(result.Items), result.Total)
		}
	}

	result, err := svc.Search(context.Background(), owner, ports.SearchContactsInput{Name: "nosuch"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Items) != 0 || result.Total != 0 {
		t.Fatalf("expected empty result, got %d items total %d", len(result.Items), result.Total)
	}
}

func TestContactService_SearchCombinesFilters(t *testing.T) {
	svc := newContactService(newStubContactRepo(), newStubAddressRepo(), &stubRecorder{})
	owner := testUser(1)
	seedContacts(t, svc, owner, 20)

	// "test1@" matches test1 and test10..test19; phone "11111" narrows to
	// ids 1 and 10..19 as well, "11112" eliminates all of them.
	result, err := svc.Search(context.Background(), owner, ports.SearchContactsInput{Email: "test1", Phone: "11112"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Total != 0 {
		t.Fatalf("AND-combined filters should exclude all, total=%d", result.Total)
	}
}

func TestContactService_SearchDoesNotCrossUsers(t *testing.T) {
	svc := newContactService(newStubContactRepo(), newStubAddressRepo(), &stubRecorder{})
	owner := testUser(1)
	other := testUser(2)
	seedContacts(t, svc, owner, 20)

	result, err := svc.Search(context.Background(), other, ports.SearchContactsInput{})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Total != 0 || len(result.Items) != 0 {
		t.Fatalf("search leaked across users: %d items total %d", len(result.Items), result.Total)
	}
}

func TestContactService_SearchPagination(t *testing.T) {
	svc := newContactService(newStubContactRepo(), newStubAddressRepo(), &stubRecorder{})
	owner := testUser(1)
	seedContacts(t, svc, owner, 20)

	result, err := svc.Search(context.Background(), owner, ports.SearchContactsInput{Page: 2, Size: 5})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Items) != 5 || result.Total != 20 || result.Page != 2 {
		t.Fatalf("page 2 size 5: got %d items total %d page %d", len(result.Items), result.Total, result.Page)
	}
	if result.Items[0].ID != 6 {
		t.Fatalf("expected page 2 to start at ID 6, got %d", result.Items[0].ID)
	}

	// A page past the end is empty but keeps the full total.
	result, err = svc.Search(context.Background(), owner, ports.SearchContactsInput{Page: 99, Size: 5})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Items) != 0 || result.Total != 20 {
		t.Fatalf("out-of-range page: got %d items total %d", len(result.Items), result.Total)
	}
}

func TestContactService_SearchNormalizesPaging(t *testing.T) {
	svc := newContactService(newStubContactRepo(), newStubAddressRepo(), &stubRecorder{})
	owner := testUser(1)
	seedContacts(t, svc, owner, 3)

	result, err := svc.Search(context.Background(), owner, ports.SearchContactsInput{Page: -4, Size: 0})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Page != 1 || result.Size != 10 {
		t.Fatalf("expected normalized page=1 size=10, got page=%d size=%d", result.Page, result.Size)
	}

	result, err = svc.Search(context.Background(), owner, ports.SearchContactsInput{Size: 5000})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Size != 100 {
		t.Fatalf("expected size clamped to 100, got %d", result.Size)
	}
}

func TestContactService_MutationsRecordActivity(t *testing.T) {
	rec := &stubRecorder{}
	svc := newContactService(newStubContactRepo(), newStubAddressRepo(), rec)
	owner := testUser(1)

	created, _ := svc.Create(context.Background(), owner, ports.ContactInput{FirstName: "x"})
	_, _ = svc.Update(context.Background(), owner, created.ID, ports.ContactInput{FirstName: "y"})
	_ = svc.Delete(context.Background(), owner, created.ID)

	want := []string{domain.ActionContactCreated, domain.ActionContactUpdated, domain.ActionContactDeleted}
	if len(rec.events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(rec.events))
	}
	for i, action := range want {
		if rec.events[i].Action != action {
			t.Fatalf("event %d: expected %s, got %s", i, action, rec.events[i].Action)
		}
		if rec.events[i].UserID != owner.ID {
			t.Fatalf("event %d attributed to wrong user %d", i, rec.events[i].UserID)
		}
	}
}
