package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"student-dashboard/app/config"
	"student-dashboard/app/database"
	"student-dashboard/app/models"
	"student-dashboard/app/routes/auth"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	addUserName     string
	addUserEmail    string
	addUserRole     string
	addUserPassword string
)

var addUserCmd = &cobra.Command{
	Use:   "add-user",
	Short: "Create a profile that can sign in",
	Long: `Create a profile with a bcrypt-hashed password. The password is
prompted for when --password is omitted.

Example:
  sms add-user --name "Ada Lovelace" --email ada@example.com --role admin`,
	RunE: runAddUser,
}

func init() {
	addUserCmd.Flags().StringVar(&addUserName, "name", "", "Display name")
	addUserCmd.Flags().StringVar(&addUserEmail, "email", "", "Sign-in email address")
	addUserCmd.Flags().StringVar(&addUserRole, "role", "", "admin, teacher, student or none")
	addUserCmd.Flags().StringVar(&addUserPassword, "password", "", "Password (prompted when omitted)")
	addUserCmd.MarkFlagRequired("name")
	addUserCmd.MarkFlagRequired("email")
	addUserCmd.MarkFlagRequired("role")
}

// ProfileCreator stores new profiles.
type ProfileCreator interface {
	CreateProfile(ctx context.Context, p *models.Profile) error
}

type newUser struct {
	Name     string
	Email    string
	Role     string
	Password string
}

var errWeakPassword = errors.New("password must be at least 8 characters")

func parseRoleFlag(s string) (models.Role, error) {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return models.RoleNone, nil
	}
	role := models.ParseRole(s)
	if role == models.RoleNone {
		return models.RoleNone, fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}

func createUser(ctx context.Context, creator ProfileCreator, v *validator.Validate, in newUser) (*models.Profile, error) {
	role, err := parseRoleFlag(in.Role)
	if err != nil {
		return nil, err
	}
	if len(in.Password) < 8 {
		return nil, errWeakPassword
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	p := &models.Profile{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Role:         role,
	}
	if err := v.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	if err := creator.CreateProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func runAddUser(cmd *cobra.Command, args []string) error {
	password := addUserPassword
	if password == "" {
		var err error
		password, err = readPassword(cmd.ErrOrStderr(), "Password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := config.InitDB(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := createUser(cmd.Context(), database.NewStore(db), validator.New(), newUser{
		Name:     addUserName,
		Email:    addUserEmail,
		Role:     addUserRole,
		Password: password,
	})
	if err != nil {
		return err
	}

	log.Info("profile created", zap.String("id", p.ID), zap.String("email", p.Email), zap.String("role", string(p.Role)))
	fmt.Fprintf(cmd.OutOrStdout(), "User created successfully: %s (%s)\n", p.Name, p.Email)
	return nil
}

func readPassword(prompt io.Writer, label string) (string, error) {
	fmt.Fprint(prompt, label)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	// Piped input
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
