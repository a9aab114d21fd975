package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	err := WrapError(errors.New("file gone"), EMISSING, "font %s not found", "X")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "font X not found", UserMessage(err))
	assert.Equal(t, "[122] font X not found", Report(err))
	plain := errors.New("boom")
	assert.Equal(t, EINTERNAL, Code(plain), "unwrapped errors should count as internal")
	assert.Equal(t, "[125] internal error: boom", Report(plain))
	assert.Equal(t, "", Report(nil))
	assert.Equal(t, EINVALID, Code(Error(EINVALID, "bad canvas")))
}
