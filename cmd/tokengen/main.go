// Command tokengen mints HS256 bearer tokens carrying identity-provider
// shaped claims (sub, preferred_username, resource_access roles) for
// exercising the API locally. The server accepts them when AUTH_JWT_SECRET
// matches the secret used here.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	secret := flag.String("secret", "", "HS256 shared secret (required)")
	subject := flag.String("sub", "", "subject claim")
	username := flag.String("username", "", "preferred_username claim (omitted when empty)")
	clientID := flag.String("client", "spring-customerapp-client", "resource_access client id")
	roles := flag.String("roles", "", "comma-separated client roles, e.g. admin_client_role")
	issuer := flag.String("issuer", "", "issuer claim (omitted when empty)")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *secret == "" {
		log.Fatal("-secret is required")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": *subject,
		"iat": now.Unix(),
		"exp": now.Add(*ttl).Unix(),
	}
	if *username != "" {
		claims["preferred_username"] = *username
	}
	if *issuer != "" {
		claims["iss"] = *issuer
	}
	if *roles != "" {
		roleList := []interface{}{}
		for _, role := range strings.Split(*roles, ",") {
			roleList = append(roleList, strings.TrimSpace(role))
		}
		claims["resource_access"] = map[string]interface{}{
			*clientID: map[string]interface{}{"roles": roleList},
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(*secret))
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}
	fmt.Println(signed)
}
