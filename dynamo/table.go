package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var keyAttributes = []string{"PK", "SK", "GSI1PK", "GSI1SK"}

func keySchema(hash, rng string) []types.KeySchemaElement {
	return []types.KeySchemaElement{
		{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash},
		{AttributeName: aws.String(rng), KeyType: types.KeyTypeRange},
	}
}

// EnsureTable creates the registrations table and its index when they do not
// exist yet. Prod tables are provisioned outside the service; this is for
// DynamoDB local.
func (d *DB) EnsureTable(ctx context.Context) error {
	attrs := make([]types.AttributeDefinition, 0, len(keyAttributes))
	for _, name := range keyAttributes {
		attrs = append(attrs, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}

	_, err := d.dynamoClient.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:            aws.String(d.tableName),
		BillingMode:          types.BillingModePayPerRequest,
		AttributeDefinitions: attrs,
		KeySchema:            keySchema("PK", "SK"),
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName:  aws.String(gsi1),
				KeySchema:  keySchema("GSI1PK", "GSI1SK"),
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return fmt.Errorf("failed to create table %q: %w", d.tableName, err)
	}

	return nil
}

// dropTable deletes the table. Only tests use it.
func (d *DB) dropTable(ctx context.Context) error {
	_, err := d.dynamoClient.DeleteTable(ctx, &dynamodb.DeleteTableInput{
		TableName: aws.String(d.tableName),
	})
	if err != nil {
		return fmt.Errorf("failed to delete table %q: %w", d.tableName, err)
	}
	return nil
}
