package grpcserver

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/metadata"
)

func makeJWT(t *testing.T, sub string, key []byte, method jwt.SigningMethod, iat time.Time, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(iat),
		NotBefore: jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(iat.Add(ttl)),
	}
	token := jwt.NewWithClaims(method, claims)
	s, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func ctxWithAuth(token string) context.Context {
	md := metadata.New(map[string]string{
		"authorization": "Bearer " + token,
	})
	return metadata.NewIncomingContext(context.Background(), md)
}

func Test_bearerTokenFromMD_OkAndErrors(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer abc.def.ghi"))
	got, err := bearerTokenFromMD(ctx)
	if err != nil || got != "abc.def.ghi" {
		t.Fatalf("ok: got=%q err=%v", got, err)
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic foo"))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on non-bearer")
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer   "))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on empty token")
	}

	if _, err := bearerTokenFromMD(context.Background()); err == nil {
		t.Fatalf("want error on no metadata")
	}
}

func Test_userIDFromCtx_Valid(t *testing.T) {
	t.Parallel()

	key := []byte("secret")
	s := &Server{signKey: key}
	want := uuid.Must(uuid.NewV4())

	tok := makeJWT(t, want.String(), key, jwt.SigningMethodHS256, time.Now(), time.Minute)
	got, err := s.userIDFromCtx(ctxWithAuth(tok))
	if err != nil || got != want {
		t.Fatalf("got=%s err=%v want=%s", got, err, want)
	}
}

func Test_userIDFromCtx_WrongKey(t *testing.T) {
	t.Parallel()

	s := &Server{signKey: []byte("right")}
	tok := makeJWT(t, uuid.Must(uuid.NewV4()).String(), []byte("wrong"), jwt.SigningMethodHS256, time.Now(), time.Minute)
	if _, err := s.userIDFromCtx(ctxWithAuth(tok)); err == nil {
		t.Fatalf("want error on wrong key")
	}
}

func Test_userIDFromCtx_Expired(t *testing.T) {
	t.Parallel()

	key := []byte("secret")
	s := &Server{signKey: key}
	tok := makeJWT(t, uuid.Must(uuid.NewV4()).String(), key, jwt.SigningMethodHS256,
		time.Now().Add(-time.Hour), time.Minute)
	if _, err := s.userIDFromCtx(ctxWithAuth(tok)); err == nil {
		t.Fatalf("want error on expired token")
	}
}

func Test_userIDFromCtx_BadSubject(t *testing.T) {
	t.Parallel()

	key := []byte("secret")
	s := &Server{signKey: key}
	tok := makeJWT(t, "not-a-uuid", key, jwt.SigningMethodHS256, time.Now(), time.Minute)
	if _, err := s.userIDFromCtx(ctxWithAuth(tok)); err == nil {
		t.Fatalf("want error on non-uuid subject")
	}
}
