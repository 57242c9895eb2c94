package repository

import (
	"context"
	"fmt"

	"admin-service/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DynamoAddressAdapter stores addresses in a table keyed by `address_id`.
type DynamoAddressAdapter struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoAddressAdapter(client *dynamodb.Client, table string) *DynamoAddressAdapter {
	return &DynamoAddressAdapter{client: client, table: table}
}

type ddbAddress struct {
	AddressID  string  `dynamodbav:"address_id"`
	UserID     string  `dynamodbav:"user_id"`
	Label      *string `dynamodbav:"label,omitempty"`
	Street     string  `dynamodbav:"street"`
	City       string  `dynamodbav:"city"`
	State      string  `dynamodbav:"state"`
	PostalCode string  `dynamodbav:"postal_code"`
	Country    string  `dynamodbav:"country"`
}

func toDDBAddress(a *models.Address) ddbAddress {
	da := ddbAddress{
		AddressID:  a.ID.String(),
		UserID:     a.UserID,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
	if a.Label != "" {
		da.Label = &a.Label
	}
	return da
}

func (da ddbAddress) toModel() models.Address {
	a := models.Address{
		UserID:     da.UserID,
		Street:     da.Street,
		City:       da.City,
		State:      da.State,
		PostalCode: da.PostalCode,
		Country:    da.Country,
	}
	a.ID, _ = uuid.Parse(da.AddressID)
	if da.Label != nil {
		a.Label = *da.Label
	}
	return a
}

func (d *DynamoAddressAdapter) FindByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	key, err := idKey("address_id", id.String())
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
	var da ddbAddress
	if err := attributevalue.UnmarshalMap(out.Item, &da); err != nil {
		return nil, fmt.Errorf("unmarshal address item: %w", err)
	}
	a := da.toModel()
	return &a, nil
}

func (d *DynamoAddressAdapter) FindByUserID(ctx context.Context, userID string) ([]models.Address, error) {
	av, err := attributevalue.Marshal(userID)
	if err != nil {
		return nil, fmt.Errorf("marshal user id: %w", err)
	}
	filterExpr := "user_id = :uid"
	input := &dynamodb.ScanInput{
		TableName:                 &d.table,
		FilterExpression:          &filterExpr,
		ExpressionAttributeValues: map[string]types.AttributeValue{":uid": av},
	}
	paginator := dynamodb.NewScanPaginator(d.client, input)
	var results []models.Address
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan addresses by user id: %w", err)
		}
		for _, it := range page.Items {
			var da ddbAddress
			if err := attributevalue.UnmarshalMap(it, &da); err != nil {
				return nil, fmt.Errorf("unmarshal address item: %w", err)
			}
			results = append(results, da.toModel())
		}
	}
	return results, nil
}

func (d *DynamoAddressAdapter) Put(ctx context.Context, address *models.Address) error {
	item, err := attributevalue.MarshalMap(toDDBAddress(address))
	if err != nil {
		return fmt.Errorf("marshal address: %w", err)
	}
	if _, err := d.client.PutItem(ctx, &dynamodb.PutItemInput{TableName: &d.table, Item: item}); err != nil {
		return fmt.Errorf("dynamodb PutItem failed: %w", err)
	}
	return nil
}

func (d *DynamoAddressAdapter) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	expr, names, values, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	key, err := idKey("address_id", id.String())
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
		return fmt.Errorf("update address failed: %w", err)
	}
	return nil
}

func (d *DynamoAddressAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	key, err := idKey("address_id", id.String())
	if err != nil {
		return err
	}
	if _, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{TableName: &d.table, Key: key}); err != nil {
		return fmt.Errorf("delete address failed: %w", err)
	}
	return nil
}
