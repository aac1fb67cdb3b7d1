package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asace-youth/event-registration/registration"
	"github.com/asace-youth/event-registration/slices"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

var _ registration.Repository = &DB{}

type registrationDynamo struct {
	PK     string
	SK     string
	GSI1PK string
	GSI1SK string

	ID          uuid.UUID
	Version     int
	CreatedAt   time.Time
	FullName    string
	Email       string
	DateOfBirth string
	Gender      registration.Gender
	Hobbies     string
	ProofKey    *string

	Status              registration.Status
	DecidedAt           *time.Time
	NotificationPending bool
	NotifiedAt          *time.Time
}

const (
	registrationEntityName = "REGISTRATION"

	// Fixed width so keys sort in time order.
	sortableTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

func registrationPK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", registrationEntityName, id)
}

func registrationSK(id uuid.UUID) string {
	return registrationPK(id)
}

// Sorting on the creation time keeps the admin list newest first.
func registrationGSI1SK(reg registration.Registration) string {
	return fmt.Sprintf("%s#%s#%s", registrationEntityName, reg.CreatedAt.UTC().Format(sortableTimeLayout), reg.ID)
}

func registrationKey(id uuid.UUID) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: registrationPK(id)},
		"SK": &types.AttributeValueMemberS{Value: registrationSK(id)},
	}
}

func registrationToDynamo(reg registration.Registration) registrationDynamo {
	return registrationDynamo{
		PK:                  registrationPK(reg.ID),
		SK:                  registrationSK(reg.ID),
		GSI1PK:              registrationEntityName,
		GSI1SK:              registrationGSI1SK(reg),
		ID:                  reg.ID,
		Version:             reg.Version,
		CreatedAt:           reg.CreatedAt,
		FullName:            reg.FullName,
		Email:               reg.Email,
		DateOfBirth:         reg.DateOfBirth,
		Gender:              reg.Gender,
		Hobbies:             reg.Hobbies,
		ProofKey:            reg.ProofKey,
		Status:              reg.Status,
		DecidedAt:           reg.DecidedAt,
		NotificationPending: reg.NotificationPending,
		NotifiedAt:          reg.NotifiedAt,
	}
}

func dynamoToRegistration(dynReg registrationDynamo) registration.Registration {
	return registration.Registration{
		ID:                  dynReg.ID,
		Version:             dynReg.Version,
		CreatedAt:           dynReg.CreatedAt,
		FullName:            dynReg.FullName,
		Email:               dynReg.Email,
		DateOfBirth:         dynReg.DateOfBirth,
		Gender:              dynReg.Gender,
		Hobbies:             dynReg.Hobbies,
		ProofKey:            dynReg.ProofKey,
		Status:              dynReg.Status,
		DecidedAt:           dynReg.DecidedAt,
		NotificationPending: dynReg.NotificationPending,
		NotifiedAt:          dynReg.NotifiedAt,
	}
}

func (d *DB) CreateRegistration(ctx context.Context, reg registration.Registration) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	dynamoReg := registrationToDynamo(reg)

	item, err := attributevalue.MarshalMap(dynamoReg)
	if err != nil {
		return registration.NewFailedToTranslateToDBModelError("Failed to translate registration to dynamo model", err)
	}
	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(newEntityVersionConditional(dynamoReg.Version)))

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condCheckFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailedErr) {
			return registration.NewRegistrationAlreadyExistsError(fmt.Sprintf("Registration with ID %q already exists", reg.ID), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return registration.NewTimeoutError("CreateRegistration timed out")
		} else {
			return registration.NewFailedToWriteError("Failed PutItem call", err)
		}
	}

	return nil
}

func (d *DB) GetRegistration(ctx context.Context, id uuid.UUID) (registration.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.tableName),
		Key:            registrationKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.Registration{}, registration.NewTimeoutError("GetRegistration timed out")
		}
		return registration.Registration{}, registration.NewFailedToFetchError(fmt.Sprintf("Failed to fetch registration with ID %q", id), err)
	}

	if len(resp.Item) == 0 {
		return registration.Registration{}, registration.NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration with ID %q not found", id), nil)
	}

	var dynReg registrationDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &dynReg)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal registration from dynamo: %s", err))
	}

	return dynamoToRegistration(dynReg), nil
}

func (d *DB) ListRegistrations(ctx context.Context, status *registration.Status) ([]registration.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	keyCond := expression.Key("GSI1PK").Equal(expression.Value(registrationEntityName)).
		And(expression.Key("GSI1SK").BeginsWith(registrationEntityName))

	builder := expression.NewBuilder().WithKeyCondition(keyCond)
	if status != nil {
		builder = builder.WithFilter(expression.Name("Status").Equal(expression.Value(*status)))
	}
	expr := exprMustBuild(builder)

	paginator := dynamodb.NewQueryPaginator(d.dynamoClient, &dynamodb.QueryInput{
		IndexName:                 aws.String(gsi1),
		TableName:                 aws.String(d.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		// Newest submission first
		ScanIndexForward: aws.Bool(false),
	})

	var dynamoItems []registrationDynamo
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, registration.NewTimeoutError("ListRegistrations timed out")
			}
			return nil, registration.NewFailedToFetchError("Failed to fetch registrations from dynamo", err)
		}

		var pageItems []registrationDynamo
		err = attributevalue.UnmarshalListOfMaps(page.Items, &pageItems)
		if err != nil {
			panic(fmt.Sprintf("failed to unmarshal dynamo registrations: %s", err))
		}
		dynamoItems = append(dynamoItems, pageItems...)
	}

	return slices.Map(dynamoItems, dynamoToRegistration), nil
}

func (d *DB) UpdateRegistrationStatus(ctx context.Context, id uuid.UUID, status registration.Status, decidedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Either the first decision, or a retry of the same decision whose email
	// never went out.
	undecided := expression.Name("Status").Equal(expression.Value(registration.PENDING))
	retry := expression.Name("Status").Equal(expression.Value(status)).
		And(expression.Name("NotificationPending").Equal(expression.Value(true)))
	cond := existingEntityConditional().And(undecided.Or(retry))

	update := expression.Set(expression.Name("Status"), expression.Value(status)).
		Set(expression.Name("DecidedAt"), expression.Value(decidedAt)).
		Set(expression.Name("NotificationPending"), expression.Value(true)).
		Set(expression.Name("Version"), expression.Name("Version").Plus(expression.Value(1)))

	expr := exprMustBuild(expression.NewBuilder().WithCondition(cond).WithUpdate(update))

	_, err := d.dynamoClient.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(d.tableName),
		Key:                       registrationKey(id),
		ConditionExpression:       expr.Condition(),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condCheckFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailedErr) {
			return d.explainFailedStatusUpdate(ctx, id, err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return registration.NewTimeoutError("UpdateRegistrationStatus timed out")
		} else {
			return registration.NewFailedToWriteError("Failed UpdateItem call", err)
		}
	}

	return nil
}

// explainFailedStatusUpdate tells a missing registration apart from one that
// has already been decided.
func (d *DB) explainFailedStatusUpdate(ctx context.Context, id uuid.UUID, condErr error) error {
	current, err := d.GetRegistration(ctx, id)
	if err != nil {
		return err
	}

	return registration.NewAlreadyDecidedError(fmt.Sprintf("Registration %q is already %s", id, current.Status), condErr)
}

func (d *DB) MarkNotificationSent(ctx context.Context, id uuid.UUID, notifiedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := expression.Set(expression.Name("NotificationPending"), expression.Value(false)).
		Set(expression.Name("NotifiedAt"), expression.Value(notifiedAt)).
		Set(expression.Name("Version"), expression.Name("Version").Plus(expression.Value(1)))

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(existingEntityConditional()).
		WithUpdate(update))

	_, err := d.dynamoClient.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(d.tableName),
		Key:                       registrationKey(id),
		ConditionExpression:       expr.Condition(),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condCheckFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailedErr) {
			return registration.NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration with ID %q not found", id), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return registration.NewTimeoutError("MarkNotificationSent timed out")
		} else {
			return registration.NewFailedToWriteError("Failed UpdateItem call", err)
		}
	}

	return nil
}
