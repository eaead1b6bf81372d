package storage

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"jira_mcp/internal/auth"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryS3 serves objects from a map keyed by bucket/key.
type memoryS3 struct {
	objects map[string][]byte
	getErr  error
}

func (m *memoryS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	body, ok := m.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func testKey() []byte {
	return bytes.Repeat([]byte{7}, 32)
}

// sealObject builds a credential object the way an operator provisions it.
func sealObject(t *testing.T, key []byte, creds auth.Credentials) []byte {
	t.Helper()
	plaintext, err := json.Marshal(map[string]string{"username": creds.Username, "api_token": creds.APIToken})
	require.NoError(t, err)

	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	aesGCM, err := cipher.NewGCM(block)
	require.NoError(t, err)

	nonce := make([]byte, aesGCM.NonceSize())
	_, err = io.ReadFull(rand.Reader, nonce)
	require.NoError(t, err)

	data := base64.StdEncoding.EncodeToString(aesGCM.Seal(nonce, nonce, plaintext, nil))
	obj, err := json.Marshal(map[string]string{"data": data})
	require.NoError(t, err)
	return obj
}

func TestS3CredentialStore_GetCredentials(t *testing.T) {
	want := auth.Credentials{Username: "alice", APIToken: "secret"}
	api := &memoryS3{objects: map[string][]byte{"creds/jira.json": sealObject(t, testKey(), want)}}

	store, err := NewS3CredentialStore(api, "creds", "jira.json", testKey())
	require.NoError(t, err)

	got, err := store.GetCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestS3CredentialStore_WrongKey(t *testing.T) {
	sealed := sealObject(t, testKey(), auth.Credentials{Username: "a", APIToken: "b"})
	api := &memoryS3{objects: map[string][]byte{"creds/jira.json": sealed}}

	other, err := NewS3CredentialStore(api, "creds", "jira.json", bytes.Repeat([]byte{9}, 32))
	require.NoError(t, err)
	_, err = other.GetCredentials(context.Background())
	assert.ErrorContains(t, err, "failed to decrypt credentials")
}

func TestS3CredentialStore_Errors(t *testing.T) {
	_, err := NewS3CredentialStore(&memoryS3{}, "b", "k", []byte("short"))
	assert.ErrorContains(t, err, "32 bytes")

	store, err := NewS3CredentialStore(&memoryS3{getErr: errors.New("access denied")}, "b", "k", testKey())
	require.NoError(t, err)
	_, err = store.GetCredentials(context.Background())
	assert.ErrorContains(t, err, "access denied")

	api := &memoryS3{objects: map[string][]byte{"b/k": []byte(`{"data":"!!!"}`)}}
	store, err = NewS3CredentialStore(api, "b", "k", testKey())
	require.NoError(t, err)
	_, err = store.GetCredentials(context.Background())
	assert.ErrorContains(t, err, "failed to decrypt credentials")

	api.objects["b/k"] = []byte(`not json`)
	_, err = store.GetCredentials(context.Background())
	assert.ErrorContains(t, err, "failed to decode credential object")
}

func TestS3CredentialStore_ReadOnly(t *testing.T) {
	var store CredentialStore = &S3CredentialStore{}
	_, writable := store.(interface {
		SetCredentials(context.Context, auth.Credentials) error
	})
	assert.False(t, writable)
}

func TestDecrypt_TooShort(t *testing.T) {
	store, err := NewS3CredentialStore(&memoryS3{}, "b", "k", testKey())
	require.NoError(t, err)
	_, err = store.decrypt("AAAA")
	assert.ErrorContains(t, err, "ciphertext too short")
}

func TestNewS3CredentialStoreFromDefaults_BadKey(t *testing.T) {
	_, err := NewS3CredentialStoreFromDefaults(context.Background(), "b", "k", "zz")
	assert.ErrorContains(t, err, "failed to decode encryption key")
}
