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

package acs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carverauto/cpeconfig/pkg/models"
)

// Task names understood by the ACS.
const (
	TaskSetParameterValues = "setParameterValues"
	TaskGetParameterValues = "getParameterValues"
	TaskRefreshObject      = "refreshObject"
	TaskReboot             = "reboot"
)

// Task is the body of a task submission.
type Task struct {
	Name            string                  `json:"name"`
	ParameterValues []models.ParameterWrite `json:"parameterValues,omitempty"`
	ParameterNames  []string                `json:"parameterNames,omitempty"`
	ObjectName      string                  `json:"objectName,omitempty"`
}

// SetParameterValues submits writes as one setParameterValues task.
func (c *Client) SetParameterValues(ctx context.Context, deviceID string, writes []models.ParameterWrite) (models.TaskResult, error) {
	if len(writes) == 0 {
		return models.TaskResult{}, ErrNoWrites
	}

	res, err := c.SubmitTask(ctx, deviceID, Task{Name: TaskSetParameterValues, ParameterValues: writes})
	if err != nil {
		return res, err
	}

	res.Writes = len(writes)

	return res, nil
}

// GetParameterValues asks the device to report the named parameters.
func (c *Client) GetParameterValues(ctx context.Context, deviceID string, names []string) (models.TaskResult, error) {
	return c.SubmitTask(ctx, deviceID, Task{Name: TaskGetParameterValues, ParameterNames: names})
}

// RefreshObject asks the device to report the subtree under objectName.
func (c *Client) RefreshObject(ctx context.Context, deviceID, objectName string) (models.TaskResult, error) {
	return c.SubmitTask(ctx, deviceID, Task{Name: TaskRefreshObject, ObjectName: objectName})
}

// Reboot submits a reboot task.
func (c *Client) Reboot(ctx context.Context, deviceID string) (models.TaskResult, error) {
	return c.SubmitTask(ctx, deviceID, Task{Name: TaskReboot})
}

// SubmitTask posts task with a connection request. Submissions are not
// retried. The response status is interpreted by TaskStatusFor.
func (c *Client) SubmitTask(ctx context.Context, deviceID string, task Task) (models.TaskResult, error) {
	start := time.Now()

	ctx, span := startSpan(ctx, "acs."+task.Name,
		attribute.String("device.id", deviceID),
		attribute.String("acs.task", task.Name),
	)
	defer span.End()

	res, err := c.submitTask(ctx, deviceID, task)
	c.observe(task.Name, err, start)
	endSpan(span, err)

	span.SetAttributes(attribute.Int("http.response.status_code", res.HTTPStatus))

	if err != nil {
		return res, fmt.Errorf("submit %s to %s: %w", task.Name, deviceID, err)
	}

	c.logger.Info().
		Str("device_id", deviceID).
		Str("task", task.Name).
		Str("task_id", res.TaskID).
		Str("status", string(res.Status)).
		Int("http_status", res.HTTPStatus).
		Msg("Submitted ACS task")

	return res, nil
}

func (c *Client) submitTask(ctx context.Context, deviceID string, task Task) (models.TaskResult, error) {
	res := models.TaskResult{DeviceID: deviceID, Task: task.Name}

	if deviceID == "" {
		return res, ErrEmptyDeviceID
	}

	payload, err := json.Marshal(task)
	if err != nil {
		return res, fmt.Errorf("encode task: %w", err)
	}

	endpoint := fmt.Sprintf("%s/devices/%s/tasks?timeout=%d&connection_request",
		c.baseURL, url.PathEscape(deviceID), c.taskTimeout.Milliseconds())

	body, status, err := c.do(ctx, http.MethodPost, endpoint, payload)
	res.HTTPStatus = status

	if err != nil {
		return res, err
	}

	if status == http.StatusNotFound {
		return res, ErrDeviceNotFound
	}

	ts, ok := TaskStatusFor(status)
	if !ok {
		return res, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, status)
	}

	res.Status = ts
	res.TaskID = gjson.GetBytes(body, "_id").String()

	return res, nil
}

// TaskStatusFor maps the ACS response code: 200 means the device applied
// the task during the connection request, 202 means it was queued for the
// next inform, any other 2xx is accepted.
func TaskStatusFor(code int) (models.TaskStatus, bool) {
	switch {
	case code == http.StatusOK:
		return models.TaskApplied, true
	case code == http.StatusAccepted:
		return models.TaskQueued, true
	case code >= 200 && code < 300:
		return models.TaskAccepted, true
	default:
		return "", false
	}
}
