package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizeOwner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		principalID int64
		ownerID     int64
		wantErr     error
	}{
		{name: "owner may act", principalID: 7, ownerID: 7, wantErr: nil},
		{name: "non-owner is refused", principalID: 7, ownerID: 8, wantErr: ErrNotOwner},
		{name: "order matters only for naming, not outcome", principalID: 8, ownerID: 7, wantErr: ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeOwner(tt.principalID, tt.ownerID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
