package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"keygate.backend/pkg/crypto"
)

// keygen mints an access key offline and prints the plaintext together with
// the salted digest and an INSERT statement, so an operator can seed the key
// store before the service has any admin session to issue keys with.
func main() {
	label := flag.String("label", "", "human-readable key label")
	admin := flag.Bool("admin", false, "grant the key admin rights")
	flag.Parse()

	plaintext, hash, salt, err := buildAccessKey()
	if err != nil {
		log.Fatalf("failed to generate access key: %v", err)
	}

	fmt.Println("Generated access key (plaintext is shown once, store it now)")
	fmt.Printf("ACCESS_KEY=%s\n", plaintext)
	fmt.Printf("KEY_HASH=%s\n", hash)
	fmt.Printf("SALT=%s\n", salt)
	fmt.Println()
	fmt.Println(insertStatement(hash, salt, *label, *admin))
}

func buildAccessKey() (plaintext, hash, salt string, err error) {
	plaintext, err = crypto.GenerateAccessKey()
	if err != nil {
		return "", "", "", err
	}
	salt, err = crypto.NewSalt()
	if err != nil {
		return "", "", "", err
	}
	return plaintext, crypto.HashKey(plaintext, salt), salt, nil
}

func insertStatement(hash, salt, label string, admin bool) string {
	return fmt.Sprintf(
		`INSERT INTO access_keys (id, key_hash, salt, label, is_admin, is_revoked, usage_count, created_at, updated_at)
VALUES ('%s', '%s', '%s', '%s', %t, false, 0, now(), now());`,
		uuid.New(), hash, salt, label, admin,
	)
}
