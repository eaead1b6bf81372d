package storage

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"jira_mcp/internal/auth"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// CredentialStore is a read-only source of the credential pair. The object is
// provisioned outside the server; nothing here writes it.
type CredentialStore interface {
	GetCredentials(ctx context.Context) (auth.Credentials, error)
}

// S3API is the subset of the S3 client used by S3CredentialStore
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3CredentialStore implements CredentialStore with one AES-GCM encrypted object in S3.
// The object is {"data": base64(nonce|ciphertext)} over {"username","api_token"}.
type S3CredentialStore struct {
	client     S3API
	bucketName string
	objectKey  string
	encryptKey []byte // 32-byte key for AES-256
}

type credentialObject struct {
	Data string `json:"data"`
}

type credentialPayload struct {
	Username string `json:"username"`
	APIToken string `json:"api_token"`
}

// NewS3CredentialStore creates a new S3CredentialStore instance
func NewS3CredentialStore(client S3API, bucketName, objectKey string, encryptKey []byte) (*S3CredentialStore, error) {
	if len(encryptKey) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(encryptKey))
	}
	return &S3CredentialStore{
		client:     client,
		bucketName: bucketName,
		objectKey:  objectKey,
		encryptKey: encryptKey,
	}, nil
}

// NewS3CredentialStoreFromDefaults builds the store with the default AWS config chain.
func NewS3CredentialStoreFromDefaults(ctx context.Context, bucketName, objectKey, keyHex string) (*S3CredentialStore, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode encryption key: %w", err)
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewS3CredentialStore(s3.NewFromConfig(cfg), bucketName, objectKey, key)
}

// GetCredentials retrieves and decrypts the credential pair
func (s *S3CredentialStore) GetCredentials(ctx context.Context) (auth.Credentials, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.objectKey),
	})
	if err != nil {
		return auth.Credentials{}, fmt.Errorf("failed to get credentials from S3: %w", err)
	}
	defer result.Body.Close()

	var obj credentialObject
	if err := json.NewDecoder(result.Body).Decode(&obj); err != nil {
		return auth.Credentials{}, fmt.Errorf("failed to decode credential object: %w", err)
	}

	plaintext, err := s.decrypt(obj.Data)
	if err != nil {
		return auth.Credentials{}, fmt.Errorf("failed to decrypt credentials: %w", err)
	}

	var payload credentialPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return auth.Credentials{}, fmt.Errorf("failed to decode credentials: %w", err)
	}
	return auth.Credentials{Username: payload.Username, APIToken: payload.APIToken}, nil
}

// decrypt opens base64(nonce|ciphertext)
func (s *S3CredentialStore) decrypt(encoded string) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	aesGCM, err := s.gcm()
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < aesGCM.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce := ciphertext[:aesGCM.NonceSize()]
	ciphertext = ciphertext[aesGCM.NonceSize():]

	return aesGCM.Open(nil, nonce, ciphertext, nil)
}

func (s *S3CredentialStore) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.encryptKey)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
