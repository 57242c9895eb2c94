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

// DynamoCategoryAdapter stores categories in a table keyed by `category_id`.
type DynamoCategoryAdapter struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoCategoryAdapter(client *dynamodb.Client, table string) *DynamoCategoryAdapter {
	return &DynamoCategoryAdapter{client: client, table: table}
}

type ddbCategory struct {
	CategoryID string `dynamodbav:"category_id"`
	Name       string `dynamodbav:"name"`
	CreatedAt  string `dynamodbav:"created_at"`
}

func (dc ddbCategory) toModel() models.Category {
	c := models.Category{Name: dc.Name}
	c.ID, _ = uuid.Parse(dc.CategoryID)
	if t, err := time.Parse(time.RFC3339, dc.CreatedAt); err == nil {
		c.CreatedAt = t
	}
	return c
}

func (d *DynamoCategoryAdapter) FindAll(ctx context.Context) ([]models.Category, error) {
	paginator := dynamodb.NewScanPaginator(d.client, &dynamodb.ScanInput{TableName: &d.table})
	var results []models.Category
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan categories: %w", err)
		}
		for _, it := range page.Items {
			var dc ddbCategory
			if err := attributevalue.UnmarshalMap(it, &dc); err != nil {
				return nil, fmt.Errorf("unmarshal category item: %w", err)
			}
			results = append(results, dc.toModel())
		}
	}
	return results, nil
}

func (d *DynamoCategoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	key, err := idKey("category_id", id.String())
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
	var dc ddbCategory
	if err := attributevalue.UnmarshalMap(out.Item, &dc); err != nil {
		return nil, fmt.Errorf("unmarshal category item: %w", err)
	}
	c := dc.toModel()
	return &c, nil
}

func (d *DynamoCategoryAdapter) FindByName(ctx context.Context, name string) (*models.Category, error) {
	av, err := attributevalue.Marshal(name)
	if err != nil {
		return nil, fmt.Errorf("marshal category name: %w", err)
	}
	filterExpr := "#n = :name"
	paginator := dynamodb.NewScanPaginator(d.client, &dynamodb.ScanInput{
		TableName:                 &d.table,
		FilterExpression:          &filterExpr,
		ExpressionAttributeNames:  map[string]string{"#n": "name"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":name": av},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan categories by name: %w", err)
		}
		if len(page.Items) == 0 {
			continue
		}
		var dc ddbCategory
		if err := attributevalue.UnmarshalMap(page.Items[0], &dc); err != nil {
			return nil, fmt.Errorf("unmarshal category item: %w", err)
		}
		c := dc.toModel()
		return &c, nil
	}
	return nil, ErrNotFound
}

func (d *DynamoCategoryAdapter) Put(ctx context.Context, category *models.Category) error {
	dc := ddbCategory{
		CategoryID: category.ID.String(),
		Name:       category.Name,
		CreatedAt:  category.CreatedAt.Format(time.RFC3339),
	}
	item, err := attributevalue.MarshalMap(dc)
	if err != nil {
		return fmt.Errorf("marshal category: %w", err)
	}
	if _, err := d.client.PutItem(ctx, &dynamodb.PutItemInput{TableName: &d.table, Item: item}); err != nil {
		return fmt.Errorf("dynamodb PutItem failed: %w", err)
	}
	return nil
}

func (d *DynamoCategoryAdapter) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	expr, names, values, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	key, err := idKey("category_id", id.String())
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
		return fmt.Errorf("update category failed: %w", err)
	}
	return nil
}

func (d *DynamoCategoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	key, err := idKey("category_id", id.String())
	if err != nil {
		return err
	}
	if _, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{TableName: &d.table, Key: key}); err != nil {
		return fmt.Errorf("delete category failed: %w", err)
	}
	return nil
}
