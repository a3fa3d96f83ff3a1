//go:build ignore

// mock-jwks-server.go - RS256 token issuer for local testing of the identity server
//
// Usage:
//   go run scripts/mock-jwks-server.go
//
// Point auth.jwks_url at http://localhost:8088/.well-known/jwks.json and
// auth.issuer at http://localhost:8088, then fetch a token with
//   curl -X POST -d client_id=alice http://localhost:8088/oauth/token

package main

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	port   = 8088
	keyID  = "local-dev"
	issuer = "http://localhost:8088"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type jwk struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func main() {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatalf("failed to generate signing key: %v", err)
	}

	http.HandleFunc("/.well-known/jwks.json", handleJWKS(&key.PublicKey))
	http.HandleFunc("/oauth/token", handleToken(key))
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Mock JWKS server starting on http://localhost%s", addr)
	log.Printf("GET  /.well-known/jwks.json - RSA public key set")
	log.Printf("POST /oauth/token           - Returns JWT signed with RS256")
	log.Fatal(http.ListenAndServe(addr, nil))
}

func handleJWKS(pub *rsa.PublicKey) http.HandlerFunc {
	set := map[string][]jwk{"keys": {{
		Kid: keyID,
		Kty: "RSA",
		Alg: "RS256",
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
	}}}

	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(set)
	}
}

func handleToken(key *rsa.PrivateKey) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}

		// client_id becomes the subject
		subject := r.FormValue("client_id")
		if subject == "" {
			subject = "local-user"
		}

		now := time.Now()
		token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
			"iss": issuer,
			"sub": subject,
			"iat": now.Unix(),
			"exp": now.Add(24 * time.Hour).Unix(),
		})
		token.Header["kid"] = keyID

		signed, err := token.SignedString(key)
		if err != nil {
			http.Error(w, "Failed to sign token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tokenResponse{
			AccessToken: signed,
			TokenType:   "Bearer",
			ExpiresIn:   86400,
		})
		log.Printf("Issued token for sub=%s", subject)
	}
}
