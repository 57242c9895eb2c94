package repository

import (
	"context"
	"fmt"

	"admin-service/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

// DynamoTagAdapter stores tags in a table keyed by `tag_id`.
type DynamoTagAdapter struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoTagAdapter(client *dynamodb.Client, table string) *DynamoTagAdapter {
	return &DynamoTagAdapter{client: client, table: table}
}

type ddbTag struct {
	TagID string `dynamodbav:"tag_id"`
	Name  string `dynamodbav:"name"`
}

func (d *DynamoTagAdapter) FindAll(ctx context.Context) ([]models.Tag, error) {
	paginator := dynamodb.NewScanPaginator(d.client, &dynamodb.ScanInput{TableName: &d.table})
	var results []models.Tag
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan tags: %w", err)
		}
		for _, it := range page.Items {
			var dt ddbTag
			if err := attributevalue.UnmarshalMap(it, &dt); err != nil {
				return nil, fmt.Errorf("unmarshal tag item: %w", err)
			}
			t := models.Tag{Name: dt.Name}
			t.ID, _ = uuid.Parse(dt.TagID)
			results = append(results, t)
		}
	}
	return results, nil
}

func (d *DynamoTagAdapter) Put(ctx context.Context, tag *models.Tag) error {
	item, err := attributevalue.MarshalMap(ddbTag{TagID: tag.ID.String(), Name: tag.Name})
	if err != nil {
		return fmt.Errorf("marshal tag: %w", err)
	}
	if _, err := d.client.PutItem(ctx, &dynamodb.PutItemInput{TableName: &d.table, Item: item}); err != nil {
		return fmt.Errorf("dynamodb PutItem failed: %w", err)
	}
	return nil
}

func (d *DynamoTagAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	key, err := idKey("tag_id", id.String())
	if err != nil {
		return err
	}
	if _, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{TableName: &d.table, Key: key}); err != nil {
		return fmt.Errorf("delete tag failed: %w", err)
	}
	return nil
}
