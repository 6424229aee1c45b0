package services

import (
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellora/internal/apperrors"
)

type accountServiceFixture struct {
	accounts *fakeAccountRepo
	roles    *fakeRoleRepo
	ledger   *fakeLedger
	emails   *fakeEmailService
	service  AccountService
}

func newAccountServiceFixture() *accountServiceFixture {
	accounts := newFakeAccountRepo()
	roles := newFakeRoleRepo()
	ledger := newFakeLedger(accounts)
	emails := &fakeEmailService{}
	auth := NewAuthService()
	tokens := NewTokenService(roles, testJWTConfig)

	return &accountServiceFixture{
		accounts: accounts,
		roles:    roles,
		ledger:   ledger,
		emails:   emails,
		service: NewAccountService(
			accounts, roles, ledger, emails, auth, tokens,
			15*time.Minute, 15*time.Minute,
		),
	}
}

func (f *accountServiceFixture) register(t *testing.T, email, password string) {
	t.Helper()
	require.NoError(t, f.service.Register(email, "Jane", "Doe", password))
}

func TestRegister_CreatesInactiveAccountWithCodeAndEmail(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()

	f.register(t, "a@x.com", "secret1")

	account, err := f.accounts.GetByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.False(t, account.IsActive, "new account must start inactive")
	assert.NotEmpty(t, account.PasswordHash)
	assert.NotEqual(t, "secret1", account.PasswordHash)

	role, err := f.roles.GetByUserID(account.ID)
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, "User", role.Name)

	require.Len(t, f.ledger.records, 1)
	assert.False(t, f.ledger.records[0].Verified)

	require.Len(t, f.emails.sent, 1)
	assert.Equal(t, "a@x.com", f.emails.sent[0].To)
	assert.Equal(t, f.ledger.records[0].Code, f.emails.sent[0].Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()

	f.register(t, "a@x.com", "secret1")

	err := f.service.Register("a@x.com", "John", "Smith", "secret2")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "EMAIL_ALREADY_EXISTS"))
}

func TestRegister_UniqueViolationRaceMapsToEmailExists(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()

	// pre-check промахивается (гонка), вставка упирается в UNIQUE
	f.accounts.createErr = &pq.Error{Code: "23505", Constraint: "accounts_email_key"}

	err := f.service.Register("a@x.com", "Jane", "Doe", "secret1")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "EMAIL_ALREADY_EXISTS"))
}

func TestRegister_EmailSendFailureIsDistinct(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()
	f.emails.sendErr = errors.New("smtp connect refused")

	err := f.service.Register("a@x.com", "Jane", "Doe", "secret1")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "EMAIL_SENDING_FAILED"))

	// аккаунт и код уже записаны: принятая несогласованность, отката нет
	account, _ := f.accounts.GetByEmail("a@x.com")
	require.NotNil(t, account)
	assert.Len(t, f.ledger.records, 1)
}

func TestVerifyEmail_WrongThenRightCode(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()
	f.register(t, "a@x.com", "secret1")

	err := f.service.VerifyEmail("a@x.com", "000000")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "INVALID_VERIFICATION_CODE"))

	account, _ := f.accounts.GetByEmail("a@x.com")
	assert.False(t, account.IsActive, "wrong code must not activate")

	code := f.ledger.lastCode("a@x.com")
	require.NoError(t, f.service.VerifyEmail("a@x.com", code))

	account, _ = f.accounts.GetByEmail("a@x.com")
	assert.True(t, account.IsActive)
	assert.True(t, f.ledger.records[0].Verified)
}

func TestVerifyEmail_CodeIsOneShot(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()
	f.register(t, "a@x.com", "secret1")
	code := f.ledger.lastCode("a@x.com")

	require.NoError(t, f.service.VerifyEmail("a@x.com", code))

	// повторное погашение сразу после успешного — отказ, не идемпотентный успех
	err := f.service.VerifyEmail("a@x.com", code)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "INVALID_VERIFICATION_CODE"))
}

func TestVerifyEmail_ExpiredCode(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()
	f.register(t, "a@x.com", "secret1")

	rec := f.ledger.records[0]
	rec.ExpiresAt = time.Now().Add(-time.Minute)

	err := f.service.VerifyEmail("a@x.com", rec.Code)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "INVALID_VERIFICATION_CODE"))
	assert.False(t, rec.Verified, "expired redemption must not mutate the record")
}

func TestLogin_SuccessReturnsTokenWithRole(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()
	f.register(t, "a@x.com", "secret1")
	require.NoError(t, f.service.VerifyEmail("a@x.com", f.ledger.lastCode("a@x.com")))

	token, err := f.service.Login("a@x.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()
	f.register(t, "a@x.com", "secret1")
	require.NoError(t, f.service.VerifyEmail("a@x.com", f.ledger.lastCode("a@x.com")))

	// неверный пароль
	_, errWrongPassword := f.service.Login("a@x.com", "wrong")
	require.Error(t, errWrongPassword)

	// несуществующий email
	_, errNoAccount := f.service.Login("ghost@x.com", "secret1")
	require.Error(t, errNoAccount)

	wrongPw, ok := apperrors.As(errWrongPassword)
	require.True(t, ok)
	noAcc, ok := apperrors.As(errNoAccount)
	require.True(t, ok)

	assert.Equal(t, wrongPw.Code, noAcc.Code)
	assert.Equal(t, wrongPw.Message, noAcc.Message)
	assert.Equal(t, "INVALID_CREDENTIALS", wrongPw.Code)
}

func TestLogin_InactiveAccountLooksLikeBadCredentials(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()
	f.register(t, "a@x.com", "secret1") // не верифицирован, неактивен

	_, err := f.service.Login("a@x.com", "secret1")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "INVALID_CREDENTIALS"))
}

func TestRequestRecovery_UnknownEmailIsUserNotFound(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()

	err := f.service.RequestRecovery("ghost@x.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "USER_NOT_FOUND"))
}

func TestRecoveryFlow_EndToEnd(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()
	f.register(t, "a@x.com", "secret1")
	require.NoError(t, f.service.VerifyEmail("a@x.com", f.ledger.lastCode("a@x.com")))

	require.NoError(t, f.service.RequestRecovery("a@x.com"))
	require.Len(t, f.emails.sent, 2)
	assert.Equal(t, "recovery", f.emails.sent[1].Kind)

	code := f.ledger.lastCode("a@x.com")

	ok, err := f.service.ConfirmCode("a@x.com", code)
	require.NoError(t, err)
	require.True(t, ok)

	// несовпадающие пароли — отказ без мутации
	account, _ := f.accounts.GetByEmail("a@x.com")
	oldHash := account.PasswordHash

	err = f.service.ResetPassword("a@x.com", "new1", "new2")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "PASSWORD_MISMATCH"))

	account, _ = f.accounts.GetByEmail("a@x.com")
	assert.Equal(t, oldHash, account.PasswordHash)

	// совпадающие — успех, старый пароль больше не подходит
	require.NoError(t, f.service.ResetPassword("a@x.com", "new1", "new1"))

	_, err = f.service.Login("a@x.com", "secret1")
	require.Error(t, err)

	token, err := f.service.Login("a@x.com", "new1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestResetPassword_WithoutConfirmedCode(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()
	f.register(t, "a@x.com", "secret1")
	require.NoError(t, f.service.VerifyEmail("a@x.com", f.ledger.lastCode("a@x.com")))

	require.NoError(t, f.service.RequestRecovery("a@x.com"))

	// код выдан, но не подтверждён
	err := f.service.ResetPassword("a@x.com", "new1", "new1")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "INVALID_VERIFICATION_CODE"))
}

func TestConfirmCode_OneShot(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()
	f.register(t, "a@x.com", "secret1")
	require.NoError(t, f.service.VerifyEmail("a@x.com", f.ledger.lastCode("a@x.com")))
	require.NoError(t, f.service.RequestRecovery("a@x.com"))

	code := f.ledger.lastCode("a@x.com")

	ok, err := f.service.ConfirmCode("a@x.com", code)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.service.ConfirmCode("a@x.com", code)
	require.NoError(t, err)
	assert.False(t, ok, "second redemption of the same code must fail")
}

func TestDeactivate(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()
	f.register(t, "a@x.com", "secret1")
	require.NoError(t, f.service.VerifyEmail("a@x.com", f.ledger.lastCode("a@x.com")))

	account, _ := f.accounts.GetByEmail("a@x.com")
	require.NoError(t, f.service.Deactivate(account.ID))

	// повторная деактивация — UserNotFound
	err := f.service.Deactivate(account.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "USER_NOT_FOUND"))

	// деактивированный невидим для логина
	_, err = f.service.Login("a@x.com", "secret1")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "INVALID_CREDENTIALS"))
}

func TestMultiplePendingCodes_LatestRedeems(t *testing.T) {
	t.Parallel()
	f := newAccountServiceFixture()
	f.register(t, "a@x.com", "secret1")
	require.NoError(t, f.service.VerifyEmail("a@x.com", f.ledger.lastCode("a@x.com")))

	// два запроса восстановления подряд: старый код не инвалидируется
	require.NoError(t, f.service.RequestRecovery("a@x.com"))
	firstCode := f.ledger.lastCode("a@x.com")
	require.NoError(t, f.service.RequestRecovery("a@x.com"))
	secondCode := f.ledger.lastCode("a@x.com")

	ok, err := f.service.ConfirmCode("a@x.com", secondCode)
	require.NoError(t, err)
	assert.True(t, ok)

	if firstCode != secondCode {
		ok, err = f.service.ConfirmCode("a@x.com", firstCode)
		require.NoError(t, err)
		assert.True(t, ok, "older pending code stays redeemable")
	}
}
