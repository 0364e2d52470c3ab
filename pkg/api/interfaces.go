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

package api

//go:generate mockgen -destination=mock_api.go -package=api github.com/carverauto/cpeconfig/pkg/api DeviceClient,MetadataStore,Auditor

import (
	"context"

	"github.com/carverauto/cpeconfig/pkg/events"
	"github.com/carverauto/cpeconfig/pkg/models"
	"github.com/carverauto/cpeconfig/pkg/snapshot"
)

// DeviceClient is the ACS surface the handlers use. *acs.Client implements it.
type DeviceClient interface {
	GetDevice(ctx context.Context, deviceID string) (*snapshot.Snapshot, error)
	SetParameterValues(ctx context.Context, deviceID string, writes []models.ParameterWrite) (models.TaskResult, error)
	GetParameterValues(ctx context.Context, deviceID string, names []string) (models.TaskResult, error)
	RefreshObject(ctx context.Context, deviceID, objectName string) (models.TaskResult, error)
	Reboot(ctx context.Context, deviceID string) (models.TaskResult, error)
}

// MetadataStore looks up operator records for a device.
type MetadataStore interface {
	Lookup(ctx context.Context, deviceID string) (models.OperatorMetadata, error)
}

// Auditor records submitted mutations.
type Auditor interface {
	PublishMutation(ctx context.Context, m events.Mutation) error
}
