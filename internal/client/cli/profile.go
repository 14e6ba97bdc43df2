package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
	"github.com/IrtizaAhmed131198/dating-app/internal/common"
)

// ShowProfile prints the authenticated user's own profile.
func (a *App) ShowProfile(ctx context.Context) error {
	profile, err := a.api.GetMyProfile(ctx)
	if err != nil {
		if errors.Is(err, common.ErrProfileRequired) {
			printlnFn("No profile yet. Use 'createprofile'.")
			return nil
		}
		return err
	}

	printlnFn(fmt.Sprintf("Bio: %s", profile.Bio))
	printlnFn(fmt.Sprintf("Age: %d", profile.Age))
	printlnFn(fmt.Sprintf("Interests: %s", strings.Join(profile.Interests, ", ")))
	printlnFn(fmt.Sprintf("Looking for: %s", profile.LookingFor))
	printlnFn(fmt.Sprintf("Neighborhood: %s", profile.Location.Neighborhood))
	return nil
}

// CreateProfile collects the profile form and creates it.
func (a *App) CreateProfile(ctx context.Context) error {
	bio, err := getSimpleText(a.reader, "Bio", os.Stdout)
	if err != nil {
		return err
	}
	ageText, err := getSimpleText(a.reader, "Age", os.Stdout)
	if err != nil {
		return err
	}
	age, err := strconv.Atoi(ageText)
	if err != nil {
		return fmt.Errorf("age must be a number")
	}
	interestsText, err := getSimpleText(a.reader, "Interests (comma separated)", os.Stdout)
	if err != nil {
		return err
	}
	lookingFor, err := getSimpleText(a.reader, "Looking for (relationship/dating/friends)", os.Stdout)
	if err != nil {
		return err
	}
	neighborhood, err := getSimpleText(a.reader, "Neighborhood", os.Stdout)
	if err != nil {
		return err
	}

	req := models.ProfileCreateRequest{
		Bio:          bio,
		Age:          age,
		Interests:    splitInterests(interestsText),
		LookingFor:   lookingFor,
		Neighborhood: neighborhood,
	}
	if err := a.api.CreateProfile(ctx, req); err != nil {
		return err
	}

	printlnFn("Profile created. You can start swiping now.")
	return nil
}

// EditProfile updates only the fields the user actually filled in.
func (a *App) EditProfile(ctx context.Context) error {
	bio, err := getSimpleText(a.reader, "New bio (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	interestsText, err := getSimpleText(a.reader, "New interests, comma separated (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	lookingFor, err := getSimpleText(a.reader, "New looking-for (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	neighborhood, err := getSimpleText(a.reader, "New neighborhood (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	var req models.ProfileUpdateRequest
	if bio != "" {
		req.Bio = &bio
	}
	if interestsText != "" {
		interests := splitInterests(interestsText)
		req.Interests = &interests
	}
	if lookingFor != "" {
		req.LookingFor = &lookingFor
	}
	if neighborhood != "" {
		req.Neighborhood = &neighborhood
	}
	if req == (models.ProfileUpdateRequest{}) {
		printlnFn("Nothing to update.")
		return nil
	}

	if err := a.api.UpdateProfile(ctx, req); err != nil {
		return err
	}
	printlnFn("Profile updated.")
	return nil
}

func splitInterests(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
