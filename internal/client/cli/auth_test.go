package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTextInput(t *testing.T, password string, answers ...string) {
	t.Helper()
	origText := getSimpleText
	origPw := getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		require.Less(t, i, len(answers), "ran out of stubbed answers")
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ io.Writer) (string, error) {
		return password, nil
	}
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPw
	})
}

func TestLogin_RoutesCredentialsToSession(t *testing.T) {
	capturePrintln(t)
	stubTextInput(t, "s3cret", "alice@example.com")

	session := &fakeSession{}
	a := newTestApp(session, "")

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, 1, session.LoginCalls)
	assert.True(t, session.IsAuthenticated())

	cred, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", cred.Email)
}

func TestLogin_PropagatesSessionError(t *testing.T) {
	capturePrintln(t)
	stubTextInput(t, "wrong", "alice@example.com")

	session := &fakeSession{loginErr: errors.New("Incorrect email or password")}
	a := newTestApp(session, "")

	err := a.Login(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect email or password")
	assert.False(t, session.IsAuthenticated())
}

func TestSignup_CollectsFormAndLogsIn(t *testing.T) {
	capturePrintln(t)
	stubTextInput(t, "s3cret",
		"bob@example.com", // email
		"Bob Smith",       // full name
		"male",            // gender
		"1995-04-01",      // date of birth
	)

	session := &fakeSession{}
	a := newTestApp(session, "")

	require.NoError(t, a.Signup(context.Background()))
	assert.True(t, session.IsAuthenticated())

	cred, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, "bob@example.com", cred.Email)
}
