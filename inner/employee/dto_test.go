package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRequest_ToEntity(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		request := SaveRequest{Name: "  John ", Email: " john@example.com", Address: "   "}

		entity := request.ToEntity()

		assert.Equal(t, "John", entity.Name)
		assert.Equal(t, "john@example.com", entity.Email)
		assert.Nil(t, entity.Address)
		assert.Nil(t, entity.Dob)
		assert.Nil(t, entity.PhoneNumber)
		assert.Nil(t, entity.ProfilePicture)
		require.NotNil(t, entity.IsActive)
		assert.True(t, *entity.IsActive)
	})

	t.Run("all fields", func(t *testing.T) {
		inactive := false
		request := SaveRequest{
			Id:             3,
			Name:           "John",
			Email:          "john@example.com",
			Address:        "42 Elm street",
			Dob:            "1990-05-17",
			PhoneNumber:    "5551234",
			ProfilePicture: "john.png",
			IsActive:       &inactive,
		}

		entity := request.ToEntity()

		assert.Equal(t, int64(3), entity.Id)
		assert.Equal(t, "42 Elm street", *entity.Address)
		require.NotNil(t, entity.Dob)
		assert.Equal(t, time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC), *entity.Dob)
		assert.Equal(t, "5551234", *entity.PhoneNumber)
		assert.Equal(t, "john.png", *entity.ProfilePicture)
		assert.False(t, *entity.IsActive)
	})
}

func TestEntity_ToResponse(t *testing.T) {
	dob := time.Date(1985, time.December, 1, 0, 0, 0, 0, time.UTC)
	active := true
	entity := Entity{
		Id:          1,
		Name:        "John",
		Email:       "john@example.com",
		Dob:         &dob,
		IsActive:    &active,
		CreatedDate: time.Date(2023, time.June, 7, 15, 4, 5, 0, time.UTC),
	}

	response := entity.toResponse()

	assert.Equal(t, "01 Dec, 1985", response.Dob)
	assert.Equal(t, "07 Jun, 2023", response.CreatedDate)
	assert.Equal(t, "", response.Address)
	assert.True(t, response.IsActive)

	entity.Dob = nil
	entity.IsActive = nil
	response = entity.toResponse()
	assert.Equal(t, NotAvailable, response.Dob)
	assert.False(t, response.IsActive)
}

func TestListRecord_ToListRow(t *testing.T) {
	record := ListRecord{
		Entity:       Entity{Id: 2, Name: "Jane", Email: "jane@example.com", PhoneNumber: strPtr("5551234")},
		TotalRecords: 99,
	}

	row := record.toListRow(25)

	assert.Equal(t, int64(25), row.TotalRecords)
	assert.Equal(t, "5551234", row.PhoneNumber)
	assert.Equal(t, NotAvailable, row.Dob)
	assert.Equal(t, NotAvailable, row.CreatedDate)
	assert.False(t, row.IsActive)
}
