// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-cms-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "session", SessionCtxKey.String())
}

func TestGetSessionFromContext_Success(t *testing.T) {
	want := models.Session{UserID: 7, Email: "a@b.c", Role: models.RoleEditor}
	ctx := WithSession(context.Background(), want)

	got, ok := GetSessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	_, ok := GetSessionFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "not a session")

	_, ok := GetSessionFromContext(ctx)
	assert.False(t, ok)
}
