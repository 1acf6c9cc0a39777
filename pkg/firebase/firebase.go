package firebase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/anonto42/medishare/backend/pkg/config"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// ErrNotConfigured means FIREBASE_CREDENTIALS_PATH is unset.
var ErrNotConfigured = errors.New("firebase login is not configured")

// verifyTimeout bounds one round trip to Google's key endpoint.
const verifyTimeout = 5 * time.Second

// Verifier checks Firebase ID tokens presented to POST /api/firebase-login.
type Verifier struct {
	client *auth.Client
}

// NewVerifier builds a Verifier from the service account file named in cfg.
func NewVerifier(ctx context.Context, cfg *config.Config) (*Verifier, error) {
	path := cfg.FirebaseCredentialsPath
	if path == "" {
		return nil, ErrNotConfigured
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("firebase credentials %s: %w", path, err)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(path))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}

	logrus.WithField("credentials", path).Info("firebase login enabled")
	return &Verifier{client: client}, nil
}

// VerifyIDToken checks signature, expiry and audience of idToken.
func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		logrus.WithError(err).Debug("firebase id token rejected")
		return nil, err
	}
	return token, nil
}
