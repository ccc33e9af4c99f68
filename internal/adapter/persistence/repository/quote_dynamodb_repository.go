package repository

import (
	"context"
	"time"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type windowAddonItem struct {
	ID           string  `dynamodbav:"id"`
	Label        string  `dynamodbav:"label"`
	BasePrice    float64 `dynamodbav:"base_price"`
	Severity     string  `dynamodbav:"severity"`
	InsideCount  int     `dynamodbav:"inside_count"`
	OutsideCount int     `dynamodbav:"outside_count"`
}

type pressureAddonItem struct {
	ID        string  `dynamodbav:"id"`
	Label     string  `dynamodbav:"label"`
	BasePrice float64 `dynamodbav:"base_price"`
	IsPerSqm  bool    `dynamodbav:"is_per_sqm"`
	AreaSqm   float64 `dynamodbav:"area_sqm"`
	Severity  string  `dynamodbav:"severity"`
}

type windowLineItem struct {
	ID                    string            `dynamodbav:"id"`
	WindowTypeID          string            `dynamodbav:"window_type_id"`
	Panes                 int               `dynamodbav:"panes"`
	Inside                bool              `dynamodbav:"inside"`
	Outside               bool              `dynamodbav:"outside"`
	HighReach             bool              `dynamodbav:"high_reach"`
	InsideHighReachCount  int               `dynamodbav:"inside_high_reach_count"`
	OutsideHighReachCount int               `dynamodbav:"outside_high_reach_count"`
	ConditionID           string            `dynamodbav:"condition_id"`
	AccessID              string            `dynamodbav:"access_id"`
	TintLevel             string            `dynamodbav:"tint_level"`
	Addons                []windowAddonItem `dynamodbav:"addons,omitempty"`
}

type pressureLineItem struct {
	ID        string              `dynamodbav:"id"`
	SurfaceID string              `dynamodbav:"surface_id"`
	AreaSqm   float64             `dynamodbav:"area_sqm"`
	SoilLevel string              `dynamodbav:"soil_level"`
	Access    string              `dynamodbav:"access"`
	Addons    []pressureAddonItem `dynamodbav:"addons,omitempty"`
}

type pricingConfigItem struct {
	BaseFee                  float64 `dynamodbav:"base_fee"`
	HourlyRate               float64 `dynamodbav:"hourly_rate"`
	MinimumJob               float64 `dynamodbav:"minimum_job"`
	HighReachModifierPercent float64 `dynamodbav:"high_reach_modifier_percent"`
	InsideMultiplier         float64 `dynamodbav:"inside_multiplier"`
	OutsideMultiplier        float64 `dynamodbav:"outside_multiplier"`
	PressureHourlyRate       float64 `dynamodbav:"pressure_hourly_rate"`
	SetupBufferMinutes       float64 `dynamodbav:"setup_buffer_minutes"`
}

type clientDetailsItem struct {
	Name     string `dynamodbav:"name"`
	Location string `dynamodbav:"location"`
	Email    string `dynamodbav:"email"`
	Phone    string `dynamodbav:"phone"`
}

type quoteItem struct {
	ID            string             `dynamodbav:"id"`
	Title         string             `dynamodbav:"title"`
	JobType       string             `dynamodbav:"job_type"`
	Client        clientDetailsItem  `dynamodbav:"client"`
	WindowLines   []windowLineItem   `dynamodbav:"window_lines,omitempty"`
	PressureLines []pressureLineItem `dynamodbav:"pressure_lines,omitempty"`
	Pricing       pricingConfigItem  `dynamodbav:"pricing"`
	CreatedAt     string             `dynamodbav:"created_at"`
	UpdatedAt     string             `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Quotes are stored as a single document per item. Line items travel with the
// quote; there is no per-line table.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	windowLines := make([]windowLineItem, 0, len(q.WindowLines))
	for _, l := range q.WindowLines {
		addons := make([]windowAddonItem, 0, len(l.Addons))
		for _, a := range l.Addons {
			addons = append(addons, windowAddonItem{
				ID:           a.ID,
				Label:        a.Label,
				BasePrice:    a.BasePrice,
				Severity:     string(a.Severity),
				InsideCount:  a.InsideCount,
				OutsideCount: a.OutsideCount,
			})
		}
		windowLines = append(windowLines, windowLineItem{
			ID:                    l.ID,
			WindowTypeID:          l.WindowTypeID,
			Panes:                 l.Panes,
			Inside:                l.Inside,
			Outside:               l.Outside,
			HighReach:             l.HighReach,
			InsideHighReachCount:  l.InsideHighReachCount,
			OutsideHighReachCount: l.OutsideHighReachCount,
			ConditionID:           l.ConditionID,
			AccessID:              l.AccessID,
			TintLevel:             string(l.TintLevel),
			Addons:                addons,
		})
	}

	pressureLines := make([]pressureLineItem, 0, len(q.PressureLines))
	for _, l := range q.PressureLines {
		addons := make([]pressureAddonItem, 0, len(l.Addons))
		for _, a := range l.Addons {
			addons = append(addons, pressureAddonItem{
				ID:        a.ID,
				Label:     a.Label,
				BasePrice: a.BasePrice,
				IsPerSqm:  a.IsPerSqm,
				AreaSqm:   a.AreaSqm,
				Severity:  string(a.Severity),
			})
		}
		pressureLines = append(pressureLines, pressureLineItem{
			ID:        l.ID,
			SurfaceID: l.SurfaceID,
			AreaSqm:   l.AreaSqm,
			SoilLevel: l.SoilLevel,
			Access:    l.Access,
			Addons:    addons,
		})
	}

	return quoteItem{
		ID:      q.ID,
		Title:   q.Title,
		JobType: q.JobType,
		Client: clientDetailsItem{
			Name:     q.Client.Name,
			Location: q.Client.Location,
			Email:    q.Client.Email,
			Phone:    q.Client.Phone,
		},
		WindowLines:   windowLines,
		PressureLines: pressureLines,
		Pricing: pricingConfigItem{
			BaseFee:                  q.Pricing.BaseFee,
			HourlyRate:               q.Pricing.HourlyRate,
			MinimumJob:               q.Pricing.MinimumJob,
			HighReachModifierPercent: q.Pricing.HighReachModifierPercent,
			InsideMultiplier:         q.Pricing.InsideMultiplier,
			OutsideMultiplier:        q.Pricing.OutsideMultiplier,
			PressureHourlyRate:       q.Pricing.PressureHourlyRate,
			SetupBufferMinutes:       q.Pricing.SetupBufferMinutes,
		},
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	windowLines := make([]entities.WindowLine, 0, len(it.WindowLines))
	for _, l := range it.WindowLines {
		addons := make([]entities.WindowAddon, 0, len(l.Addons))
		for _, a := range l.Addons {
			addons = append(addons, entities.WindowAddon{
				ID:           a.ID,
				Label:        a.Label,
				BasePrice:    a.BasePrice,
				Severity:     entities.AddonSeverity(a.Severity),
				InsideCount:  a.InsideCount,
				OutsideCount: a.OutsideCount,
			})
		}
		windowLines = append(windowLines, entities.WindowLine{
			ID:                    l.ID,
			WindowTypeID:          l.WindowTypeID,
			Panes:                 l.Panes,
			Inside:                l.Inside,
			Outside:               l.Outside,
			HighReach:             l.HighReach,
			InsideHighReachCount:  l.InsideHighReachCount,
			OutsideHighReachCount: l.OutsideHighReachCount,
			ConditionID:           l.ConditionID,
			AccessID:              l.AccessID,
			TintLevel:             entities.TintLevel(l.TintLevel),
			Addons:                addons,
		})
	}

	pressureLines := make([]entities.PressureLine, 0, len(it.PressureLines))
	for _, l := range it.PressureLines {
		addons := make([]entities.PressureAddon, 0, len(l.Addons))
		for _, a := range l.Addons {
			addons = append(addons, entities.PressureAddon{
				ID:        a.ID,
				Label:     a.Label,
				BasePrice: a.BasePrice,
				IsPerSqm:  a.IsPerSqm,
				AreaSqm:   a.AreaSqm,
				Severity:  entities.AddonSeverity(a.Severity),
			})
		}
		pressureLines = append(pressureLines, entities.PressureLine{
			ID:        l.ID,
			SurfaceID: l.SurfaceID,
			AreaSqm:   l.AreaSqm,
			SoilLevel: l.SoilLevel,
			Access:    l.Access,
			Addons:    addons,
		})
	}

	return entities.Quote{
		ID:      it.ID,
		Title:   it.Title,
		JobType: it.JobType,
		Client: entities.ClientDetails{
			Name:     it.Client.Name,
			Location: it.Client.Location,
			Email:    it.Client.Email,
			Phone:    it.Client.Phone,
		},
		WindowLines:   windowLines,
		PressureLines: pressureLines,
		Pricing: entities.PricingConfig{
			BaseFee:                  it.Pricing.BaseFee,
			HourlyRate:               it.Pricing.HourlyRate,
			MinimumJob:               it.Pricing.MinimumJob,
			HighReachModifierPercent: it.Pricing.HighReachModifierPercent,
			InsideMultiplier:         it.Pricing.InsideMultiplier,
			OutsideMultiplier:        it.Pricing.OutsideMultiplier,
			PressureHourlyRate:       it.Pricing.PressureHourlyRate,
			SetupBufferMinutes:       it.Pricing.SetupBufferMinutes,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
