package utils

// AuthCachePrefix namespaces session token hashes in the auth cache.
const AuthCachePrefix = "authToken:"
