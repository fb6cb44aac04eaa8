package api

import (
	"context"
	"errors"
)

type keyType string

const adminSubjectKey keyType = "adminSubject"

// ctxWithAdminSubject records the authenticated admin identity on the context
func ctxWithAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminSubjectKey, subject)
}

// ctxGetAdminSubject retrieves the authenticated admin identity, if any
func ctxGetAdminSubject(ctx context.Context) (string, error) {
	value := ctx.Value(adminSubjectKey)
	if value == nil {
		return "", errors.New("no authenticated subject in context")
	}
	subject, ok := value.(string)
	if !ok {
		return "", errors.New("subject is not of type `string`")
	}
	return subject, nil
}
