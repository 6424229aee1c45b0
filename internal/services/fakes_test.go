package services

import (
	"sort"
	"time"

	"github.com/lib/pq"

	"sellora/internal/models"
)

// Фейки повторяют семантику хранилища в памяти: журнал кодов append-only,
// погашение — one-shot по самой свежей подходящей записи.

type fakeAccountRepo struct {
	seq      int
	accounts map[int]*models.Account

	createErr error
	lookupErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[int]*models.Account{}}
}

func (r *fakeAccountRepo) Create(account *models.Account) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return &pq.Error{Code: "23505", Constraint: "accounts_email_key"}
		}
	}
	r.seq++
	account.ID = r.seq
	account.CreatedAt = time.Now()
	cp := *account
	r.accounts[account.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) GetByID(id int) (*models.Account, error) {
	if a, ok := r.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAccountRepo) GetByEmail(email string) (*models.Account, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	for _, a := range r.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) GetActiveByEmail(email string) (*models.Account, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	for _, a := range r.accounts {
		if a.Email == email && a.IsActive {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) ListActive() ([]*models.Account, error) {
	var res []*models.Account
	for _, a := range r.accounts {
		if a.IsActive {
			cp := *a
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (r *fakeAccountRepo) ActiveIDs() (map[int]struct{}, error) {
	ids := map[int]struct{}{}
	for id, a := range r.accounts {
		if a.IsActive {
			ids[id] = struct{}{}
		}
	}
	return ids, nil
}

func (r *fakeAccountRepo) UpdatePassword(id int, passwordHash string) error {
	a, ok := r.accounts[id]
	if !ok {
		return &pq.Error{Code: "02000"}
	}
	a.PasswordHash = passwordHash
	now := time.Now()
	a.UpdatedAt = &now
	return nil
}

func (r *fakeAccountRepo) Deactivate(id int) (bool, error) {
	a, ok := r.accounts[id]
	if !ok || !a.IsActive {
		return false, nil
	}
	a.IsActive = false
	return true, nil
}

func (r *fakeAccountRepo) activateByEmail(email string) {
	for _, a := range r.accounts {
		if a.Email == email {
			a.IsActive = true
		}
	}
}

type fakeRoleRepo struct {
	names    map[int]string // role id -> name
	byUser   map[int]int    // user id -> role id
	assigned []int
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		names:  map[int]string{1: "User", 2: "Admin"},
		byUser: map[int]int{},
	}
}

func (r *fakeRoleRepo) Assign(userID, roleID int) error {
	r.byUser[userID] = roleID
	r.assigned = append(r.assigned, userID)
	return nil
}

func (r *fakeRoleRepo) GetByUserID(userID int) (*models.Role, error) {
	roleID, ok := r.byUser[userID]
	if !ok {
		return nil, nil
	}
	return &models.Role{ID: roleID, Name: r.names[roleID]}, nil
}

type fakeLedger struct {
	seq      int64
	records  []*models.EmailVerification
	accounts *fakeAccountRepo
}

func newFakeLedger(accounts *fakeAccountRepo) *fakeLedger {
	return &fakeLedger{accounts: accounts}
}

func (l *fakeLedger) Create(email, code string, expiresAt time.Time) (*models.EmailVerification, error) {
	l.seq++
	v := &models.EmailVerification{
		ID:        l.seq,
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	l.records = append(l.records, v)
	return v, nil
}

// redeemable — самая свежая (по expires_at) непогашенная и непросроченная запись.
func (l *fakeLedger) redeemable(email, code string) *models.EmailVerification {
	var best *models.EmailVerification
	now := time.Now()
	for _, v := range l.records {
		if v.Email != email || v.Code != code || v.Verified || !v.ExpiresAt.After(now) {
			continue
		}
		if best == nil || v.ExpiresAt.After(best.ExpiresAt) {
			best = v
		}
	}
	return best
}

func (l *fakeLedger) Redeem(email, code string) (bool, error) {
	v := l.redeemable(email, code)
	if v == nil {
		return false, nil
	}
	v.Verified = true
	return true, nil
}

func (l *fakeLedger) RedeemAndActivate(email, code string) (bool, error) {
	ok, err := l.Redeem(email, code)
	if err != nil || !ok {
		return ok, err
	}
	l.accounts.activateByEmail(email)
	return true, nil
}

func (l *fakeLedger) LatestVerified(email string) (*models.EmailVerification, error) {
	var best *models.EmailVerification
	now := time.Now()
	for _, v := range l.records {
		if v.Email != email || !v.Verified || !v.ExpiresAt.After(now) {
			continue
		}
		if best == nil || v.ExpiresAt.After(best.ExpiresAt) {
			best = v
		}
	}
	return best, nil
}

// lastCode — последний выданный код для email (для сценарных тестов).
func (l *fakeLedger) lastCode(email string) string {
	for i := len(l.records) - 1; i >= 0; i-- {
		if l.records[i].Email == email {
			return l.records[i].Code
		}
	}
	return ""
}

type sentEmail struct {
	To   string
	Code string
	Kind string
}

type fakeEmailService struct {
	sent    []sentEmail
	sendErr error
}

func (s *fakeEmailService) SendVerificationEmail(email, code string, ttlMinutes int) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, sentEmail{To: email, Code: code, Kind: "verification"})
	return nil
}

func (s *fakeEmailService) SendRecoveryEmail(email, code string, ttlMinutes int) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, sentEmail{To: email, Code: code, Kind: "recovery"})
	return nil
}
