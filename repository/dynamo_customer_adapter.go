package repository

import (
	"context"
	"fmt"
	"time"

	"admin-service/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DynamoCustomerAdapter stores customers in a table keyed by `customer_id`.
type DynamoCustomerAdapter struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoCustomerAdapter(client *dynamodb.Client, table string) *DynamoCustomerAdapter {
	return &DynamoCustomerAdapter{client: client, table: table}
}

type ddbCustomer struct {
	CustomerID        string  `dynamodbav:"customer_id"`
	UserID            string  `dynamodbav:"user_id"`
	Email             *string `dynamodbav:"email,omitempty"`
	Name              *string `dynamodbav:"name,omitempty"`
	BillingAddressID  *string `dynamodbav:"billing_address_id,omitempty"`
	ShippingAddressID *string `dynamodbav:"shipping_address_id,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
}

func toDDBCustomer(c *models.Customer) ddbCustomer {
	dc := ddbCustomer{
		CustomerID: c.ID.String(),
		UserID:     c.UserID,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
	}
	if c.Email != "" {
		dc.Email = &c.Email
	}
	if c.Name != "" {
		dc.Name = &c.Name
	}
	if c.BillingAddressID != nil {
		s := c.BillingAddressID.String()
		dc.BillingAddressID = &s
	}
	if c.ShippingAddressID != nil {
		s := c.ShippingAddressID.String()
		dc.ShippingAddressID = &s
	}
	return dc
}

func (dc ddbCustomer) toModel() models.Customer {
	c := models.Customer{UserID: dc.UserID}
	c.ID, _ = uuid.Parse(dc.CustomerID)
	if dc.Email != nil {
		c.Email = *dc.Email
	}
	if dc.Name != nil {
		c.Name = *dc.Name
	}
	if dc.BillingAddressID != nil {
		if u, err := uuid.Parse(*dc.BillingAddressID); err == nil {
			c.BillingAddressID = &u
		}
	}
	if dc.ShippingAddressID != nil {
		if u, err := uuid.Parse(*dc.ShippingAddressID); err == nil {
			c.ShippingAddressID = &u
		}
	}
	if t, err := time.Parse(time.RFC3339, dc.CreatedAt); err == nil {
		c.CreatedAt = t
	}
	return c
}

func (d *DynamoCustomerAdapter) FindAll(ctx context.Context) ([]models.Customer, error) {
	paginator := dynamodb.NewScanPaginator(d.client, &dynamodb.ScanInput{TableName: &d.table})
	var results []models.Customer
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan customers: %w", err)
		}
		for _, it := range page.Items {
			var dc ddbCustomer
			if err := attributevalue.UnmarshalMap(it, &dc); err != nil {
				return nil, fmt.Errorf("unmarshal customer item: %w", err)
			}
			results = append(results, dc.toModel())
		}
	}
	return results, nil
}

func (d *DynamoCustomerAdapter) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	key, err := idKey("customer_id", id.String())
	if err != nil {
		return nil, err
	}
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{TableName: &d.table, Key: key})
	if err != nil {
		return nil, fmt.Errorf("dynamodb GetItem failed: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}
	var dc ddbCustomer
	if err := attributevalue.UnmarshalMap(out.Item, &dc); err != nil {
		return nil, fmt.Errorf("unmarshal customer item: %w", err)
	}
	c := dc.toModel()
	return &c, nil
}

func (d *DynamoCustomerAdapter) FindByUserID(ctx context.Context, userID string) (*models.Customer, error) {
	av, err := attributevalue.Marshal(userID)
	if err != nil {
		return nil, fmt.Errorf("marshal user id: %w", err)
	}
	filterExpr := "user_id = :uid"
	paginator := dynamodb.NewScanPaginator(d.client, &dynamodb.ScanInput{
		TableName:                 &d.table,
		FilterExpression:          &filterExpr,
		ExpressionAttributeValues: map[string]types.AttributeValue{":uid": av},
	})
	// A filtered page can come back empty while later pages still hold the
	// match, so keep paging until the paginator is exhausted.
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan customers by user id: %w", err)
		}
		if len(page.Items) == 0 {
			continue
		}
		var dc ddbCustomer
		if err := attributevalue.UnmarshalMap(page.Items[0], &dc); err != nil {
			return nil, fmt.Errorf("unmarshal customer item: %w", err)
		}
		c := dc.toModel()
		return &c, nil
	}
	return nil, ErrNotFound
}

func (d *DynamoCustomerAdapter) Put(ctx context.Context, customer *models.Customer) error {
	item, err := attributevalue.MarshalMap(toDDBCustomer(customer))
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}
	if _, err := d.client.PutItem(ctx, &dynamodb.PutItemInput{TableName: &d.table, Item: item}); err != nil {
		return fmt.Errorf("dynamodb PutItem failed: %w", err)
	}
	return nil
}

func (d *DynamoCustomerAdapter) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	expr, names, values, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	key, err := idKey("customer_id", id.String())
	if err != nil {
		return err
	}
	_, err = d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 &d.table,
		Key:                       key,
		UpdateExpression:          &expr,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return fmt.Errorf("update customer failed: %w", err)
	}
	return nil
}

func (d *DynamoCustomerAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	key, err := idKey("customer_id", id.String())
	if err != nil {
		return err
	}
	if _, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{TableName: &d.table, Key: key}); err != nil {
		return fmt.Errorf("delete customer failed: %w", err)
	}
	return nil
}
