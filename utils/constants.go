package utils

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// TokenTTLHours is how long issued JWT tokens remain valid.
const TokenTTLHours = 72
