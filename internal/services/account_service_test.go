package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librio/internal/models/db_models"
	"librio/internal/models/request_models"
	mem "librio/pkg/memcache"
	"librio/pkg/utils"
)

func newAccountFixture(accounts *fakeAccountRepo, subs *fakeSubscriptionRepo) (AccountServiceInterface, *fakeMailService) {
	mail := newFakeMailService()
	svc := NewAccountService(accounts, subs, mail, mem.NewResetTokens())
	return svc, mail
}

func TestCreateAccountAndLogin(t *testing.T) {
accounts := newFakeAccountRepo()
	svc, _ := newAccountFixture(accounts, newFakeSubscriptionRepo())

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "hunter22",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.IsUserHavePremium)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	accounts := newFakeAccountRepo(&db_models.Account{Email: "ana@example.com"})
	svc, _ := newAccountFixture(accounts, newFakeSubscriptionRepo())

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "hunter22",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("hunter22")
	require.NoError(t, err)

	accounts := newFakeAccountRepo(&db_models.Account{Email: "ana@example.com", PasswordHash: hash})
	svc, _ := newAccountFixture(accounts, newFakeSubscriptionRepo())

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginReportsPremiumForActiveMember(t *testing.T) {
hash, err := utils.HashPassword("hunter22")
	require.NoError(t, err)
	account := &db_models.Account{Email: "ana@example.com", PasswordHash: hash}
	accounts := newFakeAccountRepo(account)
	subs := newFakeSubscriptionRepo(&db_models.Subscription{
		AccountID: account.ID,
		SubDate:   utils.DayUnix(time.Now().AddDate(0, 0, -5)),
		ExpDate:   utils.DayUnix(time.Now().AddDate(0, 0, 25)),
	})
	svc, _ := newAccountFixture(accounts, subs)

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsUserHavePremium)
}

func TestPasswordResetRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("oldpassword")
	require.NoError(t, err)
	account := &db_models.Account{Email: "ana@example.com", PasswordHash: hash}
	accounts := newFakeAccountRepo(account)
	svc, mail := newAccountFixture(accounts, newFakeSubscriptionRepo())

	require.NoError(t, svc.ForgotPassword(context.Background(), "ana@example.com"))
	token := mail.resetTokenFor("ana@example.com")
	require.NotEmpty(t, token)

	err = svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Token:       token,
		NewPassword: "newpassword",
	})
	require.NoError(t, err)
	assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "newpassword"))

	// Single use.
	err = svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Token:       token,
		NewPassword: "again",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	svc, mail := newAccountFixture(newFakeAccountRepo(), newFakeSubscriptionRepo())

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Empty(t, mail.resetTokenFor("nobody@example.com"))
}
