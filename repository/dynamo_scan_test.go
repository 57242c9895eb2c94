package repository_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"admin-service/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
)

// newScanStub serves one canned Scan response per request, in order, and
// counts how many requests the adapter made.
func newScanStub(t *testing.T, pages []string) (*dynamodb.Client, *int) {
	t.Helper()
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests >= len(pages) {
			t.Errorf("unexpected request %d, only %d pages stubbed", requests+1, len(pages))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		fmt.Fprint(w, pages[requests])
		requests++
	}))
	t.Cleanup(srv.Close)

	cfg := aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("test", "test", ""),
	}
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(srv.URL)
	})
	return client, &requests
}

func TestCategoryFindByNameFollowsScanPagination(t *testing.T) {
	// The filter drops every item on the first page, but the cursor says
	// there is more to scan. The match only shows up on the second page.
	client, requests := newScanStub(t, []string{
		`{"Items":[],"Count":0,"ScannedCount":5,"LastEvaluatedKey":{"category_id":{"S":"cursor-1"}}}`,
		`{"Items":[{"category_id":{"S":"7b693c5e-9a3f-4c6a-b6d0-3f2d1d3c9a01"},"name":{"S":"Lighting"},"created_at":{"S":"2024-03-01T00:00:00Z"}}],"Count":1,"ScannedCount":4}`,
	})

	adapter := repository.NewDynamoCategoryAdapter(client, "categories")
	category, err := adapter.FindByName(context.Background(), "Lighting")
	assert.NoError(t, err)
	assert.Equal(t, "Lighting", category.Name)
	assert.Equal(t, "7b693c5e-9a3f-4c6a-b6d0-3f2d1d3c9a01", category.ID.String())
	assert.Equal(t, 2, *requests)
}

func TestCategoryFindByNameExhaustedScanIsNotFound(t *testing.T) {
	client, requests := newScanStub(t, []string{
		`{"Items":[],"Count":0,"ScannedCount":5,"LastEvaluatedKey":{"category_id":{"S":"cursor-1"}}}`,
		`{"Items":[],"Count":0,"ScannedCount":2}`,
	})

	adapter := repository.NewDynamoCategoryAdapter(client, "categories")
	_, err := adapter.FindByName(context.Background(), "Lighting")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, 2, *requests)
}

func TestCustomerFindByUserIDFollowsScanPagination(t *testing.T) {
	client, requests := newScanStub(t, []string{
		`{"Items":[],"Count":0,"ScannedCount":5,"LastEvaluatedKey":{"customer_id":{"S":"cursor-1"}}}`,
		`{"Items":[{"customer_id":{"S":"2f5a9b1c-8d4e-4f3a-9c2b-1e0d7a6b5c43"},"user_id":{"S":"user-77"},"name":{"S":"Dana"},"created_at":{"S":"2024-03-01T00:00:00Z"}}],"Count":1,"ScannedCount":3}`,
	})

	adapter := repository.NewDynamoCustomerAdapter(client, "customers")
	customer, err := adapter.FindByUserID(context.Background(), "user-77")
	assert.NoError(t, err)
	assert.Equal(t, "user-77", customer.UserID)
	assert.Equal(t, "Dana", customer.Name)
	assert.Equal(t, 2, *requests)
}

func TestCustomerFindByUserIDExhaustedScanIsNotFound(t *testing.T) {
	client, _ := newScanStub(t, []string{
		`{"Items":[],"Count":0,"ScannedCount":0}`,
	})

	adapter := repository.NewDynamoCustomerAdapter(client, "customers")
	_, err := adapter.FindByUserID(context.Background(), "user-missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
