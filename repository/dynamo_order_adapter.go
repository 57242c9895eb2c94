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

// DynamoOrderAdapter stores orders in a table keyed by `order_id`.
// Monetary fields stay strings end to end; the adapter never parses
// them.
type DynamoOrderAdapter struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoOrderAdapter(client *dynamodb.Client, table string) *DynamoOrderAdapter {
	return &DynamoOrderAdapter{client: client, table: table}
}

type ddbOrderItem struct {
	ProductID string `dynamodbav:"product_id"`
	Name      string `dynamodbav:"name"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
}

type ddbOrder struct {
	OrderID           string         `dynamodbav:"order_id"`
	OrderNumber       string         `dynamodbav:"order_number"`
	UserID            string         `dynamodbav:"user_id"`
	Items             []ddbOrderItem `dynamodbav:"items,omitempty"`
	Subtotal          *string        `dynamodbav:"subtotal,omitempty"`
	TotalAmount       string         `dynamodbav:"total_amount"`
	PaymentStatus     string         `dynamodbav:"payment_status"`
	ShippingAddressID *string        `dynamodbav:"shipping_address_id,omitempty"`
	CreatedAt         string         `dynamodbav:"created_at"`
}

func toDDBOrder(o *models.Order) ddbOrder {
	do := ddbOrder{
		OrderID:       o.ID.String(),
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserID,
		TotalAmount:   o.TotalAmount,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
	if o.Subtotal != "" {
		do.Subtotal = &o.Subtotal
	}
	if o.ShippingAddressID != nil {
		s := o.ShippingAddressID.String()
		do.ShippingAddressID = &s
	}
	for _, it := range o.Items {
		do.Items = append(do.Items, ddbOrderItem{
			ProductID: it.ProductID.String(),
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return do
}

func (do ddbOrder) toModel() models.Order {
	o := models.Order{
		OrderNumber:   do.OrderNumber,
		UserID:        do.UserID,
		TotalAmount:   do.TotalAmount,
		PaymentStatus: do.PaymentStatus,
	}
	o.ID, _ = uuid.Parse(do.OrderID)
	if do.Subtotal != nil {
		o.Subtotal = *do.Subtotal
	}
	if do.ShippingAddressID != nil {
		if u, err := uuid.Parse(*do.ShippingAddressID); err == nil {
			o.ShippingAddressID = &u
		}
	}
	for _, it := range do.Items {
		item := models.OrderItem{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
		item.ProductID, _ = uuid.Parse(it.ProductID)
		o.Items = append(o.Items, item)
	}
	if t, err := time.Parse(time.RFC3339, do.CreatedAt); err == nil {
		o.CreatedAt = t
	}
	return o
}

func (d *DynamoOrderAdapter) FindAll(ctx context.Context) ([]models.Order, error) {
	paginator := dynamodb.NewScanPaginator(d.client, &dynamodb.ScanInput{TableName: &d.table})
	var results []models.Order
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan orders: %w", err)
		}
		for _, it := range page.Items {
			var do ddbOrder
			if err := attributevalue.UnmarshalMap(it, &do); err != nil {
				return nil, fmt.Errorf("unmarshal order item: %w", err)
			}
			results = append(results, do.toModel())
		}
	}
	return results, nil
}

func (d *DynamoOrderAdapter) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	key, err := idKey("order_id", id.String())
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
	var do ddbOrder
	if err := attributevalue.UnmarshalMap(out.Item, &do); err != nil {
		return nil, fmt.Errorf("unmarshal order item: %w", err)
	}
	o := do.toModel()
	return &o, nil
}

func (d *DynamoOrderAdapter) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
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
	var results []models.Order
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan orders by user id: %w", err)
		}
		for _, it := range page.Items {
			var do ddbOrder
			if err := attributevalue.UnmarshalMap(it, &do); err != nil {
				return nil, fmt.Errorf("unmarshal order item: %w", err)
			}
			results = append(results, do.toModel())
		}
	}
	return results, nil
}

func (d *DynamoOrderAdapter) Put(ctx context.Context, order *models.Order) error {
	item, err := attributevalue.MarshalMap(toDDBOrder(order))
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	if _, err := d.client.PutItem(ctx, &dynamodb.PutItemInput{TableName: &d.table, Item: item}); err != nil {
		return fmt.Errorf("dynamodb PutItem failed: %w", err)
	}
	return nil
}

func (d *DynamoOrderAdapter) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	expr, names, values, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	key, err := idKey("order_id", id.String())
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
		return fmt.Errorf("update order failed: %w", err)
	}
	return nil
}

func (d *DynamoOrderAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	key, err := idKey("order_id", id.String())
	if err != nil {
		return err
	}
	if _, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{TableName: &d.table, Key: key}); err != nil {
		return fmt.Errorf("delete order failed: %w", err)
	}
	return nil
}
