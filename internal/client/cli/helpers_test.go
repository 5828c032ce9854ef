package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/loankeeper/internal/client/config"
	"github.com/dmitrijs2005/loankeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/loankeeper/internal/client/services"
	"github.com/dmitrijs2005/loankeeper/internal/logging"
)

// newTestApp wires real services over an in-memory store.
func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	store := kv.NewMemoryStore()
	log := logging.Discard()
	ledger := services.NewLedgerService(store, log)
	out := &bytes.Buffer{}

	return &App{
		config:       &config.Config{Currency: "$"},
		store:        store,
		log:          log,
		authService:  services.NewAuthService(store, services.PlainCodec{}, log),
		ledger:       ledger,
		achievements: services.NewAchievementService(store, ledger, log),
		reader:       bufio.NewReader(strings.NewReader("")),
		out:          out,
	}, out
}

// stubAnswers feeds answers to getSimpleText and getConfirmation in order,
// and password to getPassword.
func stubAnswers(t *testing.T, password string, answers ...string) {
	t.Helper()
	origST, origGP, origGC := getSimpleText, getPassword, getConfirmation

	next := func() (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next() }
	getConfirmation = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		a, err := next()
		return a == "y", err
	}
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return []byte(password), nil }

	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
		getConfirmation = origGC
	})
}
