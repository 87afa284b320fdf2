package firebase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Service bundles the Firebase clients the API uses: Auth for verifying
// ID tokens, Firestore for the tour collection.
type Service struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

// Init creates the Firebase admin app and its clients. Credentials come
// from the FIREBASE_CREDENTIALS env var (K8s secret, raw JSON) or from a
// service-account file at credentialsPath.
func Init(ctx context.Context, projectID, credentialsPath string) (*Service, error) {
	var opts []option.ClientOption

	if credJSON := os.Getenv("FIREBASE_CREDENTIALS"); credJSON != "" {
		var credMap map[string]interface{}
		if err := json.Unmarshal([]byte(credJSON), &credMap); err != nil {
			return nil, fmt.Errorf("invalid JSON in FIREBASE_CREDENTIALS: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON([]byte(credJSON)))
	} else if credentialsPath != "" {
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("credentials file not found: %s", credentialsPath)
		}
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating auth client: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	log.Println("[Firebase] Successfully initialized")

	return &Service{
		Auth:      authClient,
		Firestore: fsClient,
	}, nil
}

// Close releases the Firestore client.
func (s *Service) Close() error {
	if s == nil || s.Firestore == nil {
		return nil
	}
	return s.Firestore.Close()
}
