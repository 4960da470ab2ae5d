package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"librio/internal/models/db_models"
	"librio/internal/repositories"
)

// In-memory repositories backing the service tests. They implement the
// same interfaces the gorm repositories do, minus the actual locking,
// which is irrelevant for single-goroutine tests.

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*db_models.Account
}

func newFakeAccountRepo(accounts ...*db_models.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: make(map[uuid.UUID]*db_models.Account)}
	for _, a := range accounts {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.accounts[a.ID] = a
	}
	return r
}

func (r *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) Save(ctx context.Context, account *db_models.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	return r.accounts[id], nil
}

func (r *fakeAccountRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	return r.accounts[id], nil
}

func (r *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) ListAll(ctx context.Context) ([]db_models.Account, error) {
	out := make([]db_models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	return out, nil
}

type fakeSubscriptionRepo struct {
	subs map[uuid.UUID]*db_models.Subscription // keyed by account id
}

func newFakeSubscriptionRepo(subs ...*db_models.Subscription) *fakeSubscriptionRepo {
	r := &fakeSubscriptionRepo{subs: make(map[uuid.UUID]*db_models.Subscription)}
	for _, s := range subs {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		r.subs[s.AccountID] = s
	}
	return r
}

func (r *fakeSubscriptionRepo) Insert(ctx context.Context, sub *db_models.Subscription) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	r.subs[sub.AccountID] = sub
	return nil
}

func (r *fakeSubscriptionRepo) Save(ctx context.Context, sub *db_models.Subscription) error {
	r.subs[sub.AccountID] = sub
	return nil
}

func (r *fakeSubscriptionRepo) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {
	return r.subs[accountID], nil
}

func (r *fakeSubscriptionRepo) ListExpiringBetween(ctx context.Context, fromDay, toDay int64) ([]db_models.Subscription, error) {
	var out []db_models.Subscription
	for _, s := range r.subs {
		if s.ExpDate >= fromDay && s.ExpDate <= toDay {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakePointTxnRepo struct {
	txns []*db_models.PointTransaction
}

func (r *fakePointTxnRepo) Insert(ctx context.Context, txn *db_models.PointTransaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	r.txns = append(r.txns, txn)
	return nil
}

func (r *fakePointTxnRepo) Save(ctx context.Context, txn *db_models.PointTransaction) error {
	for i, t := range r.txns {
		if t.ID == txn.ID {
			r.txns[i] = txn
			return nil
		}
	}
	r.txns = append(r.txns, txn)
	return nil
}

func (r *fakePointTxnRepo) FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.PointTransaction, error) {
	for _, t := range r.txns {
		if t.ProviderTxnID == providerTxnID {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakePointTxnRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.PointTransaction, error) {
	var out []db_models.PointTransaction
	for _, t := range r.txns {
		if t.AccountID == accountID {
			out = append(out, *t)
		}
	}
	return out, nil
}

// fakeUnitOfWork hands the same in-memory repositories to the closure.
// No rollback: tests asserting failure check that guards fire before
// any mutation instead.
type fakeBookRepo struct {
	books map[uuid.UUID]*db_models.Book
}

func newFakeBookRepo(books ...*db_models.Book) *fakeBookRepo {
	r := &fakeBookRepo{books: make(map[uuid.UUID]*db_models.Book)}
	for _, b := range books {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}
		r.books[b.ID] = b
	}
	return r
}

func (r *fakeBookRepo) Insert(ctx context.Context, book *db_models.Book) error {
	if book.ID == uuid.Nil {
		book.ID = uuid.New()
	}
	r.books[book.ID] = book
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Book, error) {
	return r.books[id], nil
}

func (r *fakeBookRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Book, error) {
	return r.all(), nil
}

func (r *fakeBookRepo) Search(ctx context.Context, query string, page, pageSize int) ([]db_models.Book, error) {
	return r.all(), nil
}

func (r *fakeBookRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Book, error) {
	var out []db_models.Book
	for _, id := range ids {
		if b, ok := r.books[id]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) ListLatest(ctx context.Context, limit int) ([]db_models.Book, error) {
	return r.all(), nil
}

func (r *fakeBookRepo) all() []db_models.Book {
	out := make([]db_models.Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, *b)
	}
	return out
}

type fakeReviewRepo struct {
	reviews []*db_models.Review
}

func (r *fakeReviewRepo) CreateReview(ctx context.Context, review *db_models.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) ListByBook(ctx context.Context, bookID uuid.UUID, page, pageSize int) ([]db_models.Review, error) {
	var out []db_models.Review
	for _, rv := range r.reviews {
		if rv.BookID == bookID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

type fakeUnitOfWork struct {
	repos repositories.TxRepos
}

func newFakeUnitOfWork(accounts *fakeAccountRepo, subs *fakeSubscriptionRepo, points *fakePointTxnRepo) *fakeUnitOfWork {
	return &fakeUnitOfWork{repos: repositories.TxRepos{
		Accounts:      accounts,
		Subscriptions: subs,
		Points:        points,
	}}
}

func (u *fakeUnitOfWork) Do(ctx context.Context, fn func(tx repositories.TxRepos) error) error {
	return fn(u.repos)
}

type recordedNotification struct {
	accountID uuid.UUID
	expDate   int64
}

type recordingNotifier struct {
	subscribed    []recordedNotification
	canceled      []recordedNotification
	expiringSoon  []recordedNotification
	expiringToday []recordedNotification
}

func (n *recordingNotifier) NotifySubscribed(account *db_models.Account, sub *db_models.Subscription) {
	n.subscribed = append(n.subscribed, recordedNotification{account.ID, sub.ExpDate})
}

func (n *recordingNotifier) NotifyCanceled(account *db_models.Account, sub *db_models.Subscription) {
	n.canceled = append(n.canceled, recordedNotification{account.ID, sub.ExpDate})
}

func (n *recordingNotifier) NotifyExpiringSoon(account *db_models.Account, sub *db_models.Subscription) {
	n.expiringSoon = append(n.expiringSoon, recordedNotification{account.ID, sub.ExpDate})
}

func (n *recordingNotifier) NotifyExpiringToday(account *db_models.Account, sub *db_models.Subscription) {
	n.expiringToday = append(n.expiringToday, recordedNotification{account.ID, sub.ExpDate})
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type sentMail struct {
	to      string
	subject string
	body    string
}

// fakeMailService records sends; safe for the notifier worker goroutine.
type fakeMailService struct {
	mu          sync.Mutex
	sent        []sentMail
	resetTokens map[string]string // email -> token
}

func newFakeMailService() *fakeMailService {
	return &fakeMailService{resetTokens: make(map[string]string)}
}

func (m *fakeMailService) SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (m *fakeMailService) SendMailToResetPassword(email, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetTokens[email] = token
	return nil
}

func (m *fakeMailService) sentMails() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}

func (m *fakeMailService) resetTokenFor(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resetTokens[email]
}
