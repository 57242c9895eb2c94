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

// DynamoProductAdapter stores products in a table keyed by `product_id`.
type DynamoProductAdapter struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoProductAdapter(client *dynamodb.Client, table string) *DynamoProductAdapter {
	return &DynamoProductAdapter{client: client, table: table}
}

type ddbProduct struct {
	ProductID     string   `dynamodbav:"product_id"`
	Name          string   `dynamodbav:"name"`
	Description   *string  `dynamodbav:"description,omitempty"`
	Price         string   `dynamodbav:"price"`
	Stock         string   `dynamodbav:"stock"`
	Images        []string `dynamodbav:"images,omitempty"`
	CategoryID    *string  `dynamodbav:"category_id,omitempty"`
	SubcategoryID *string  `dynamodbav:"subcategory_id,omitempty"`
	TagIDs        []string `dynamodbav:"tag_ids,omitempty"`
	CreatedAt     string   `dynamodbav:"created_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

func toDDBProduct(p *models.Product) ddbProduct {
	dp := ddbProduct{
		ProductID: p.ID.String(),
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		Images:    p.Images,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Description != "" {
		dp.Description = &p.Description
	}
	if p.CategoryID != nil {
		s := p.CategoryID.String()
		dp.CategoryID = &s
	}
	if p.SubcategoryID != nil {
		s := p.SubcategoryID.String()
		dp.SubcategoryID = &s
	}
	for _, id := range p.TagIDs {
		dp.TagIDs = append(dp.TagIDs, id.String())
	}
	return dp
}

func (dp ddbProduct) toModel() models.Product {
	p := models.Product{
		Name:   dp.Name,
		Price:  dp.Price,
		Stock:  dp.Stock,
		Images: dp.Images,
	}
	p.ID, _ = uuid.Parse(dp.ProductID)
	if dp.Description != nil {
		p.Description = *dp.Description
	}
	if dp.CategoryID != nil {
		if u, err := uuid.Parse(*dp.CategoryID); err == nil {
			p.CategoryID = &u
		}
	}
	if dp.SubcategoryID != nil {
		if u, err := uuid.Parse(*dp.SubcategoryID); err == nil {
			p.SubcategoryID = &u
		}
	}
	for _, s := range dp.TagIDs {
		if u, err := uuid.Parse(s); err == nil {
			p.TagIDs = append(p.TagIDs, u)
		}
	}
	if t, err := time.Parse(time.RFC3339, dp.CreatedAt); err == nil {
		p.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, dp.UpdatedAt); err == nil {
		p.UpdatedAt = t
	}
	return p
}

func (d *DynamoProductAdapter) FindAll(ctx context.Context) ([]models.Product, error) {
	input := &dynamodb.ScanInput{TableName: &d.table}
	paginator := dynamodb.NewScanPaginator(d.client, input)
	var results []models.Product
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan products: %w", err)
		}
		for _, it := range page.Items {
			var dp ddbProduct
			if err := attributevalue.UnmarshalMap(it, &dp); err != nil {
				return nil, fmt.Errorf("unmarshal product item: %w", err)
			}
			results = append(results, dp.toModel())
		}
	}
	return results, nil
}

func (d *DynamoProductAdapter) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	key, err := idKey("product_id", id.String())
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
	var dp ddbProduct
	if err := attributevalue.UnmarshalMap(out.Item, &dp); err != nil {
		return nil, fmt.Errorf("unmarshal product item: %w", err)
	}
	p := dp.toModel()
	return &p, nil
}

func (d *DynamoProductAdapter) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	av, err := attributevalue.Marshal(categoryID.String())
	if err != nil {
		return nil, fmt.Errorf("marshal category id: %w", err)
	}
	filterExpr := "category_id = :cid"
	input := &dynamodb.ScanInput{
		TableName:                 &d.table,
		FilterExpression:          &filterExpr,
		ExpressionAttributeValues: map[string]types.AttributeValue{":cid": av},
	}
	paginator := dynamodb.NewScanPaginator(d.client, input)
	var results []models.Product
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan products by category: %w", err)
		}
		for _, it := range page.Items {
			var dp ddbProduct
			if err := attributevalue.UnmarshalMap(it, &dp); err != nil {
				return nil, fmt.Errorf("unmarshal product item: %w", err)
			}
			results = append(results, dp.toModel())
		}
	}
	return results, nil
}

func (d *DynamoProductAdapter) Put(ctx context.Context, product *models.Product) error {
	item, err := attributevalue.MarshalMap(toDDBProduct(product))
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	if _, err := d.client.PutItem(ctx, &dynamodb.PutItemInput{TableName: &d.table, Item: item}); err != nil {
		return fmt.Errorf("dynamodb PutItem failed: %w", err)
	}
	return nil
}

func (d *DynamoProductAdapter) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	expr, names, values, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	key, err := idKey("product_id", id.String())
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
		return fmt.Errorf("update product failed: %w", err)
	}
	return nil
}

func (d *DynamoProductAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	key, err := idKey("product_id", id.String())
	if err != nil {
		return err
	}
	if _, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{TableName: &d.table, Key: key}); err != nil {
		return fmt.Errorf("delete product failed: %w", err)
	}
	return nil
}
