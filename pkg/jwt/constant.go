package jwt

import "github.com/golang-jwt/jwt/v5"

// MinSecretKeyLen is the shortest HS256 secret New accepts, in bytes.
const MinSecretKeyLen = 32

// acceptedMethods are the only "alg" header values Verify trusts.
var acceptedMethods = []string{jwt.SigningMethodHS256.Alg()}
