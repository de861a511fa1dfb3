package cli

import (
	"context"
	"strings"
	"time"

	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ownerFlags selects the user a purchase or review command acts for, by id or by email.
type ownerFlags struct {
	userID string
	email  string
}

func (f *ownerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.userID, "user", "", "acting user id")
	cmd.Flags().StringVar(&f.email, "email", "", "acting user email (instead of --user)")
	cmd.MarkFlagsMutuallyExclusive("user", "email")
}

func (f *ownerFlags) set() bool {
	return f.userID != "" || f.email != ""
}

// resolve returns the selected user. Emails match active users only, ignoring case.
func (f *ownerFlags) resolve(ctx context.Context, users usecase.UserUsecase) (uuid.UUID, error) {
	switch {
	case f.userID != "":
		id, err := parseOptionalID("user", f.userID)
		if err != nil {
			return uuid.Nil, err
		}

		return *id, nil
	case f.email != "":
		list, err := users.ListUsers(ctx, false)
		if err != nil {
			return uuid.Nil, err
		}
		for _, u := range list {
			if strings.EqualFold(u.Email(), strings.TrimSpace(f.email)) {
				return u.ID(), nil
			}
		}

		return uuid.Nil, domainerrors.ErrUserNotFound.WithDetails(f.email)
	default:
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("user: set --user or --email")
	}
}

// parseOptionalTime parses an RFC 3339 flag where the empty string means unset.
func parseOptionalTime(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + ": must be an RFC 3339 timestamp")
	}

	return &t, nil
}
