package database

import (
	"context"
	"errors"
	"fmt"

	"translation_backoffice/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

// TableCreator is the part of *dynamodb.Client EnsureTables needs.
type TableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ TableCreator = (*dynamodb.Client)(nil)

// TableSpec describes one table by its string hash key and optional string range key.
//
// Child tables of a quote are partitioned by quote_id so they can be listed with
// strongly consistent queries.
type TableSpec struct {
	Name     string
	HashKey  string
	RangeKey string
}

// TableSpecs lists the tables of the service with the configured names.
func TableSpecs(t config.Tables) []TableSpec {
	return []TableSpec{
		{Name: t.Quotes, HashKey: "id"},
		{Name: t.LineItems, HashKey: "quote_id", RangeKey: "id"},
		{Name: t.Certifications, HashKey: "quote_id", RangeKey: "id"},
		{Name: t.Adjustments, HashKey: "quote_id", RangeKey: "id"},
		{Name: t.Payments, HashKey: "quote_id", RangeKey: "id"},
		{Name: t.Totals, HashKey: "quote_id"},
	}
}

// EnsureTables creates the missing tables (on-demand billing). Existing tables are left alone.
// It returns the names it created.
func EnsureTables(ctx context.Context, ddb TableCreator, specs []TableSpec) ([]string, error) {
	var created []string
	for _, ts := range specs {
		_, err := ddb.CreateTable(ctx, createTableInput(ts))
		var inUse *types.ResourceInUseException
		switch {
		case errors.As(err, &inUse):
			log.Info().Str("table", ts.Name).Msg("dynamodb table already exists")
		case err != nil:
			return created, fmt.Errorf("create table %s: %w", ts.Name, err)
		default:
			log.Info().Str("table", ts.Name).Msg("dynamodb table created")
			created = append(created, ts.Name)
		}
	}
	return created, nil
}

func createTableInput(ts TableSpec) *dynamodb.CreateTableInput {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(ts.Name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(ts.HashKey), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(ts.HashKey), KeyType: types.KeyTypeHash},
		},
	}
	if ts.RangeKey != "" {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(ts.RangeKey), AttributeType: types.ScalarAttributeTypeS,
		})
		in.KeySchema = append(in.KeySchema, types.KeySchemaElement{
			AttributeName: aws.String(ts.RangeKey), KeyType: types.KeyTypeRange,
		})
	}
	return in
}
