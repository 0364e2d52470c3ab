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

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/carverauto/cpeconfig/pkg/acs"
	"github.com/carverauto/cpeconfig/pkg/catalog"
	"github.com/carverauto/cpeconfig/pkg/events"
	srHttp "github.com/carverauto/cpeconfig/pkg/http"
	"github.com/carverauto/cpeconfig/pkg/models"
	"github.com/carverauto/cpeconfig/pkg/mutation"
	"github.com/carverauto/cpeconfig/pkg/operator"
	"github.com/carverauto/cpeconfig/pkg/snapshot"
)

const (
	writeKindWifi       = "wifi"
	writeKindParameters = "parameters"
)

func deviceID(r *http.Request) string {
	return strings.TrimSpace(mux.Vars(r)["id"])
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}

	return validateRequest(dst)
}

// fail maps err to a status and writes it. Server side failures are logged.
func (s *APIServer) fail(w http.ResponseWriter, r *http.Request, id string, err error) {
	status := statusFor(err)

	if status >= http.StatusInternalServerError {
		s.logger.Error().
			Err(err).
			Str("device_id", id).
			Str("request_id", srHttp.RequestID(r.Context())).
			Int("status", status).
			Msg("Device request failed")
	}

	writeError(w, err.Error(), status)
}

func (s *APIServer) requireDevices(w http.ResponseWriter, r *http.Request, id string) bool {
	if s.devices != nil {
		return true
	}

	s.fail(w, r, id, errNoDeviceAPI)

	return false
}

// getDeviceSummary fetches the device and its operator metadata
// concurrently and returns the normalized summary.
func (s *APIServer) getDeviceSummary(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r)
	if !s.requireDevices(w, r, id) {
		return
	}

	var (
		snap *snapshot.Snapshot
		md   models.OperatorMetadata
	)

	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		var err error

		snap, err = s.devices.GetDevice(ctx, id)

		return err
	})

	g.Go(func() error {
		md = s.lookupMetadata(ctx, id)

		return nil
	})

	if err := g.Wait(); err != nil {
		s.fail(w, r, id, err)
		return
	}

	summary := s.extractor.Extract(snap)

	if s.metrics != nil {
		inferred := 0

		for _, c := range summary.WANConnections {
			if c.Inferred {
				inferred++
			}
		}

		s.metrics.RecordInferredBridges(inferred)
	}

	s.writeSuccess(w, models.DeviceView{Summary: summary, Operator: md})
}

// lookupMetadata never fails the request; missing records and store
// errors leave the metadata empty.
func (s *APIServer) lookupMetadata(ctx context.Context, id string) models.OperatorMetadata {
	md, err := s.store.Lookup(ctx, id)

	outcome := "ok"

	switch {
	case err == nil:
	case errors.Is(err, operator.ErrNotFound):
		outcome = "not_found"
	case errors.Is(err, context.Canceled):
		outcome = "canceled"
	default:
		outcome = "error"

		s.logger.Warn().Err(err).Str("device_id", id).Msg("Operator metadata lookup failed")
	}

	if s.metrics != nil {
		s.metrics.RecordOperatorLookup(outcome)
	}

	if err != nil {
		return nil
	}

	return md
}

// setWifi resolves the WiFi paths against the device's current snapshot.
// When the snapshot cannot be fetched for any reason other than a missing
// device, every plausible path is written.
func (s *APIServer) setWifi(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r)
	if !s.requireDevices(w, r, id) {
		return
	}

	var req models.WiFiRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.fail(w, r, id, err)
		return
	}

	mode := catalog.SecurityMode(req.SecurityMode)
	if mode == "" {
		mode = catalog.SecurityWPA2PSK
	}

	snap, err := s.devices.GetDevice(r.Context(), id)

	switch {
	case err == nil:
	case errors.Is(err, acs.ErrDeviceNotFound):
		s.fail(w, r, id, err)
		return
	default:
		s.logger.Warn().
			Err(err).
			Str("device_id", id).
			Msg("Snapshot unavailable, writing every candidate path")

		snap = nil
	}

	writes := s.builder.BuildWifiWrite(req.SSID, req.Password, req.WLANIndex, mode, snap)

	s.submitWrites(w, r, id, writeKindWifi, req, writes)
}

func (s *APIServer) submitWrites(
	w http.ResponseWriter, r *http.Request, id, kind string, req interface{}, writes []models.ParameterWrite,
) {
	res, err := s.devices.SetParameterValues(r.Context(), id, writes)

	s.audit(r, id, req, writes, res, err)

	if err != nil {
		s.fail(w, r, id, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordWrites(kind, len(writes))
	}

	s.writeSuccess(w, res)
}

// audit publishes the outcome of a submitted task. Failures are logged and
// never change the response.
func (s *APIServer) audit(
	r *http.Request, id string, req interface{}, writes []models.ParameterWrite, res models.TaskResult, taskErr error,
) {
	if res.DeviceID == "" {
		res.DeviceID = id
	}

	m := events.NewMutation(srHttp.RequestID(r.Context()), req, writes, res, taskErr)

	outcome := "ok"

	if err := s.auditor.PublishMutation(r.Context(), m); err != nil {
		outcome = "error"

		s.logger.Warn().Err(err).Str("device_id", id).Msg("Failed to publish audit event")
	}

	if s.metrics != nil {
		s.metrics.RecordEvent(outcome)
	}
}

func (s *APIServer) rebootDevice(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r)
	if !s.requireDevices(w, r, id) {
		return
	}

	res, err := s.devices.Reboot(r.Context(), id)

	if res.Task == "" {
		res.Task = acs.TaskReboot
	}

	s.audit(r, id, nil, nil, res, err)

	if err != nil {
		s.fail(w, r, id, err)
		return
	}

	s.writeSuccess(w, res)
}

// getParameters reads the requested paths from the stored snapshot.
func (s *APIServer) getParameters(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r)
	if !s.requireDevices(w, r, id) {
		return
	}

	paths := make([]string, 0, len(r.URL.Query()["path"]))

	for _, p := range r.URL.Query()["path"] {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}

	if len(paths) == 0 {
		s.fail(w, r, id, errMissingPaths)
		return
	}

	snap, err := s.devices.GetDevice(r.Context(), id)
	if err != nil {
		s.fail(w, r, id, err)
		return
	}

	s.writeSuccess(w, readParameters(snap, paths))
}

func readParameters(snap *snapshot.Snapshot, paths []string) []models.ParameterValue {
	out := make([]models.ParameterValue, 0, len(paths))

	for _, p := range paths {
		pv := models.ParameterValue{Path: p}

		if node, ok := snap.Lookup(p); ok {
			if v, ok := node.Param(); ok {
				pv.Value = v
				pv.Type = node.ParamType()
				pv.Found = true
			}
		}

		out = append(out, pv)
	}

	return out
}

func (s *APIServer) setParameters(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r)
	if !s.requireDevices(w, r, id) {
		return
	}

	var req models.SetParametersRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.fail(w, r, id, err)
		return
	}

	writes, err := mutation.BuildParameterWrites(req.Values)
	if err != nil {
		s.fail(w, r, id, err)
		return
	}

	s.submitWrites(w, r, id, writeKindParameters, req, writes)
}

// refreshParameters asks the device to report fresh values for names, or
// for every parameter under object.
func (s *APIServer) refreshParameters(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r)
	if !s.requireDevices(w, r, id) {
		return
	}

	var req models.RefreshRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.fail(w, r, id, err)
		return
	}

	var (
		res models.TaskResult
		err error
	)

	if req.Object != "" {
		res, err = s.devices.RefreshObject(r.Context(), id, req.Object)
	} else {
		res, err = s.devices.GetParameterValues(r.Context(), id, req.Names)
	}

	if err != nil {
		s.fail(w, r, id, err)
		return
	}

	s.writeSuccess(w, res)
}
