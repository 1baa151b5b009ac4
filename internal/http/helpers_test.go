package http_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tazhibayda/contact-service/internal/contact"
	"github.com/tazhibayda/contact-service/internal/domain"
	api "github.com/tazhibayda/contact-service/internal/http"
	"github.com/tazhibayda/contact-service/internal/mail"
)

type fakeStore struct {
	contacts []domain.Contact
	listErr  error
	pingErr  error
}

func (f *fakeStore) InsertContact(_ context.Context, c *domain.Contact) error {
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now().UTC()
	f.contacts = append(f.contacts, *c)
	return nil
}

// newest first, like the mongo sort
func (f *fakeStore) ListContacts(context.Context) ([]domain.Contact, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Contact, 0, len(f.contacts))
	for i := len(f.contacts) - 1; i >= 0; i-- {
		out = append(out, f.contacts[i])
	}
	return out, nil
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

type fakeMailer struct {
	configured bool
	sendErr    error
	sent       int
}

func (f *fakeMailer) Configured() bool { return f.configured }

func (f *fakeMailer) Send(context.Context, mail.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent++
	return nil
}

type testEnv struct {
	Store  *fakeStore
	Mailer *fakeMailer
	Router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &fakeStore{}
	mailer := &fakeMailer{configured: true}
	proc := contact.NewProcessor(store, mailer, 0) // no send delay in tests
	h := api.NewHandler(store, proc, false)
	r := api.NewRouter(h, api.NewMemoryLimiter(1000, time.Minute), []string{"http://localhost:8080"})
	return &testEnv{Store: store, Mailer: mailer, Router: r}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	e.Router.ServeHTTP(w, req)
	return w
}

var errBoom = errors.New("boom")
