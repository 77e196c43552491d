package entitlement

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ReadPolicyFile loads a Rego module from the local filesystem.
func ReadPolicyFile(path string) (string, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("policy not found: %w", err)
	}

	if fileInfo.IsDir() {
		return "", errors.New("policy path is a directory, not a file")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read policy: %w", err)
	}

	return string(content), nil
}

// NewResolverFromFile compiles the policy at path, or the embedded policy when path is empty.
func NewResolverFromFile(ctx context.Context, path string) (Resolver, error) {
	if path == "" {
		return NewResolver(ctx)
	}

	module, err := ReadPolicyFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load entitlement policy %s: %w", path, err)
	}

	return NewResolverFromPolicy(ctx, module)
}
