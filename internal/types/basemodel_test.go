package types

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDefaultBaseModel(t *testing.T) {
	ctx := context.WithValue(context.Background(), CtxTenantID, "tenant_1")
	ctx = context.WithValue(ctx, CtxUserID, "user_creator")

	m := GetDefaultBaseModel(ctx)
	assert.Equal(t, "tenant_1", m.TenantID)
	assert.Equal(t, StatusPublished, m.Status)
	assert.Equal(t, "user_creator", m.CreatedBy)
	assert.Equal(t, "user_creator", m.UpdatedBy)
}

func TestTouchRefreshesAuditTrail(t *testing.T) {
	ctx := context.WithValue(context.Background(), CtxTenantID, "tenant_1")
	ctx = context.WithValue(ctx, CtxUserID, "user_creator")
	m := GetDefaultBaseModel(ctx)

	editorCtx := context.WithValue(ctx, CtxUserID, "user_editor")
	m.Touch(editorCtx)

	assert.Equal(t, "user_editor", m.UpdatedBy)
	assert.Equal(t, "user_creator", m.CreatedBy)
	assert.False(t, m.UpdatedAt.Before(m.CreatedAt))
}
