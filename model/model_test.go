package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNamesMatchSchema(t *testing.T) {
	assert.Equal(t, "clinica", Clinic{}.TableName())
	assert.Equal(t, "enfermeiro", Nurse{}.TableName())
	assert.Equal(t, "medico", Doctor{}.TableName())
	assert.Equal(t, "paciente", Patient{}.TableName())
	assert.Equal(t, "trabalha", Shift{}.TableName())
	assert.Equal(t, "consulta", Appointment{}.TableName())
	assert.Equal(t, "receita", Prescription{}.TableName())
	assert.Equal(t, "observacao", Observation{}.TableName())
	assert.Equal(t, "tempo", TimeSlot{}.TableName())
}

func TestObservationValueOmittedForSymptoms(t *testing.T) {
	symptom := Observation{AppointmentID: 1, Parameter: "Sintoma1"}
	payload, err := json.Marshal(symptom)
	assert.NoError(t, err)
	assert.NotContains(t, string(payload), "valor")

	value := 36.7
	metric := Observation{AppointmentID: 1, Parameter: "Metrica1", Value: &value}
	payload, err = json.Marshal(metric)
	assert.NoError(t, err)
	assert.Contains(t, string(payload), "valor")
}
