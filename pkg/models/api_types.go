/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package models pkg/models/api_types.go
package models

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	// Error message
	Message string `json:"message" example:"Invalid request parameters"`
	// HTTP status code
	Status int `json:"status" example:"400"`
}

// APIResponse is the success envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// WiFiRequest sets the SSID and security of one WLAN.
type WiFiRequest struct {
	SSID         string `json:"ssid" validate:"required,max=32"`
	Password     string `json:"password" validate:"omitempty,min=8,max=63" sensitive:"true"`
	WLANIndex    int    `json:"wlan_index" validate:"omitempty,min=1,max=8"`
	SecurityMode string `json:"security_mode" validate:"omitempty,oneof=WPA2PSK WPAPSK WPA2PSKWPAPSK None"`
}

// ParameterInput is one value of a generic set request.
type ParameterInput struct {
	Path  string `json:"path" validate:"required"`
	Value string `json:"value" sensitive:"true"`
	Type  string `json:"type" validate:"omitempty,oneof=xsd:string xsd:boolean xsd:unsignedInt xsd:int xsd:dateTime"`
}

// SetParametersRequest writes arbitrary parameters.
type SetParametersRequest struct {
	Values []ParameterInput `json:"values" validate:"required,min=1,dive"`
}

// RefreshRequest asks the device to report the named parameters, or the
// whole subtree under Object.
type RefreshRequest struct {
	Names  []string `json:"names,omitempty" validate:"omitempty,dive,required"`
	Object string   `json:"object,omitempty" validate:"excluded_with=Names"`
}

// TaskStatus interprets the ACS response to a submitted task.
type TaskStatus string

const (
	TaskApplied  TaskStatus = "applied"
	TaskQueued   TaskStatus = "queued"
	TaskAccepted TaskStatus = "accepted"
)

// TaskResult is returned for every submitted task.
type TaskResult struct {
	DeviceID   string     `json:"device_id"`
	Task       string     `json:"task"`
	TaskID     string     `json:"task_id,omitempty"`
	Status     TaskStatus `json:"status"`
	HTTPStatus int        `json:"http_status"`
	Writes     int        `json:"writes,omitempty"`
}

// ParameterValue is one entry of a parameter read. Found is false when the
// snapshot carries no value at Path.
type ParameterValue struct {
	Path  string `json:"path"`
	Value string `json:"value,omitempty"`
	Type  string `json:"type,omitempty"`
	Found bool   `json:"found"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status     string `json:"status"`
	ACSBreaker string `json:"acs_breaker,omitempty"`
}
