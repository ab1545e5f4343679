package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jbeshir/star-reviews/internal/datasources"
	"github.com/jbeshir/star-reviews/internal/reviewstore/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewDelete_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		reviewID   string
		removeErr  error
		wantStatus int
		skipRemove bool
	}{
		{
			name:       "deleted",
			reviewID:   "rev_123",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing_id",
			reviewID:   "",
			wantStatus: http.StatusBadRequest,
			skipRemove: true,
		},
		{
			name:       "remote_failure",
			reviewID:   "rev_123",
			removeErr:  &datasources.RemoteError{Op: "deleteReview", Err: errors.New("timeout")},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			remover := mocks.NewMockRemover(t)

			if !tc.skipRemove {
				remover.EXPECT().
					Remove(mock.Anything, tc.reviewID).
					Return(tc.removeErr)
			}

			ctrl := ReviewDelete{Remover: remover}

			req := httptest.NewRequest(http.MethodDelete, "/v1/reviews/"+tc.reviewID, nil)
			req = testContext()(req)
			req = mux.SetURLVars(req, map[string]string{
				"review_id": tc.reviewID,
			})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
