/*
# Module: storage/dynamodb.go
DynamoDB repository implementations for volunteer and donation records.

## Linked Modules
- [storage/repository](./repository.go) - Repository interfaces
- [types/volunteer](../types/volunteer.go) - Volunteer data structures
- [types/donation](../types/donation.go) - Donation data structures

## Tags
storage, dynamodb, persistence, repository

## Exports
VolunteerDynamoDBRepository, DonationDynamoDBRepository

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "storage/dynamodb.go" ;
    code:description "DynamoDB repository implementations for volunteer and donation records" ;
    code:linksTo [
        code:name "storage/repository" ;
        code:path "./repository.go" ;
        code:relationship "Repository interfaces"
    ], [
        code:name "types/volunteer" ;
        code:path "../types/volunteer.go" ;
        code:relationship "Volunteer data structures"
    ], [
        code:name "types/donation" ;
        code:path "../types/donation.go" ;
        code:relationship "Donation data structures"
    ] ;
    code:exports :VolunteerDynamoDBRepository, :DonationDynamoDBRepository ;
    code:tags "storage", "dynamodb", "persistence", "repository" .
<!-- End LinkedDoc RDF -->
*/
package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/fenotesb/helping-hands-platform/internal/errs"
	"github.com/fenotesb/helping-hands-platform/internal/types"
)

// VolunteerDynamoDBRepository implements VolunteerRepository using DynamoDB
type VolunteerDynamoDBRepository struct {
	client    *dynamodb.Client
	tableName string
}

// NewVolunteerDynamoDBRepository creates a new DynamoDB volunteer repository
func NewVolunteerDynamoDBRepository(client *dynamodb.Client, tableName string) *VolunteerDynamoDBRepository {
	return &VolunteerDynamoDBRepository{
		client:    client,
		tableName: tableName,
	}
}

// Save stores a volunteer record in DynamoDB
func (r *VolunteerDynamoDBRepository) Save(ctx context.Context, volunteer types.Volunteer) error {
	if r.client == nil {
		return fmt.Errorf("DynamoDB client not initialized")
	}

	item, err := attributevalue.MarshalMap(volunteer)
	if err != nil {
		return fmt.Errorf("failed to marshal volunteer: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save volunteer to DynamoDB: %w", err)
	}

	return nil
}

// GetByID retrieves a volunteer by id
func (r *VolunteerDynamoDBRepository) GetByID(ctx context.Context, id string) (*types.Volunteer, error) {
	if r.client == nil {
		return nil, fmt.Errorf("DynamoDB client not initialized")
	}

	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]dynamodbtypes.AttributeValue{
			"id": &dynamodbtypes.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get volunteer: %w", err)
	}

	if result.Item == nil {
		return nil, errs.ErrNotFound
	}

	var volunteer types.Volunteer
	if err := attributevalue.UnmarshalMap(result.Item, &volunteer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal volunteer: %w", err)
	}

	return &volunteer, nil
}

// GetAll retrieves every volunteer record, following scan pagination
func (r *VolunteerDynamoDBRepository) GetAll(ctx context.Context) ([]types.Volunteer, error) {
	if r.client == nil {
		return nil, fmt.Errorf("DynamoDB client not initialized")
	}

	volunteers := make([]types.Volunteer, 0)
	var lastEvaluatedKey map[string]dynamodbtypes.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName: aws.String(r.tableName),
		}
		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		result, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteers: %w", err)
		}

		for _, item := range result.Items {
			var volunteer types.Volunteer
			if err := attributevalue.UnmarshalMap(item, &volunteer); err != nil {
				return nil, fmt.Errorf("failed to unmarshal volunteer: %w", err)
			}
			volunteers = append(volunteers, volunteer)
		}

		lastEvaluatedKey = result.LastEvaluatedKey
		if lastEvaluatedKey == nil {
			break
		}
	}

	return volunteers, nil
}

// DonationDynamoDBRepository implements DonationRepository using DynamoDB
type DonationDynamoDBRepository struct {
	client    *dynamodb.Client
	tableName string
}

// NewDonationDynamoDBRepository creates a new DynamoDB donation repository
func NewDonationDynamoDBRepository(client *dynamodb.Client, tableName string) *DonationDynamoDBRepository {
	return &DonationDynamoDBRepository{
		client:    client,
		tableName: tableName,
	}
}

// Save stores a donation record in DynamoDB
func (r *DonationDynamoDBRepository) Save(ctx context.Context, donation types.Donation) error {
	if r.client == nil {
		return fmt.Errorf("DynamoDB client not initialized")
	}

	item, err := attributevalue.MarshalMap(donation)
	if err != nil {
		return fmt.Errorf("failed to marshal donation: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save donation to DynamoDB: %w", err)
	}

	return nil
}

// GetByID retrieves a donation by id
func (r *DonationDynamoDBRepository) GetByID(ctx context.Context, id string) (*types.Donation, error) {
	if r.client == nil {
		return nil, fmt.Errorf("DynamoDB client not initialized")
	}

	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]dynamodbtypes.AttributeValue{
			"id": &dynamodbtypes.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}

	if result.Item == nil {
		return nil, errs.ErrNotFound
	}

	var donation types.Donation
	if err := attributevalue.UnmarshalMap(result.Item, &donation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal donation: %w", err)
	}

	return &donation, nil
}
