package utils

import "os"

// GetPort returns the port from the environment variable PORT
func GetPort(fallback string) string {
	port := os.Getenv("PORT")
	if port == "" {
		port = fallback
	}
	return port
}

// GetCertFiles returns the certificate files from the environment variables
func GetCertFiles(certFallback, keyFallback string) (string, string) {
	certFile := os.Getenv("CERT_FILE")
	keyFile := os.Getenv("KEY_FILE")
	if certFile == "" {
		certFile = certFallback
	}
	if keyFile == "" {
		keyFile = keyFallback
	}
	return certFile, keyFile
}
