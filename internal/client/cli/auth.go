package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On failure the error
// carries the backend's detail message when one was provided.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		return err
	}

	printlnFn("Welcome back!")
	return nil
}

// Signup collects the registration form and creates an account. A
// successful signup leaves the user logged in, like the web client.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	gender, err := getSimpleText(a.reader, "Gender (female/male/other)", os.Stdout)
	if err != nil {
		return err
	}
	dateOfBirth, err := getSimpleText(a.reader, "Date of birth (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.SignupRequest{
		Email:       email,
		Password:    password,
		FullName:    fullName,
		Gender:      gender,
		DateOfBirth: dateOfBirth,
	}
	if err := a.session.Signup(ctx, req); err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Account created for %s. Create your profile next ('createprofile').", email))
	return nil
}
