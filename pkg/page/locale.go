/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package page

import (
	"fmt"
	"sort"

	"github.com/alb-demo/ec2-instance-viewer/pkg/cloud/metadata"
)

const DefaultLocale = "es"

// Messages are the user-visible strings of the page.
type Messages struct {
	Title            string `json:"-"`
	Subtitle         string `json:"-"`
	InstanceID       string `json:"-"`
	PublicIP         string `json:"-"`
	AvailabilityZone string `json:"-"`
	InstanceType     string `json:"-"`
	LastUpdated      string `json:"-"`
	Loading          string `json:"loading"`
	Refresh          string `json:"refresh"`
	Refreshed        string `json:"refreshed"`
	Error            string `json:"error"`
	Details          string `json:"-"`
	DetailsText      string `json:"detailsText"`
	AWSBadge         string `json:"awsBadge"`
	SimulatedBadge   string `json:"simulatedBadge"`
}

// Locale pairs the metadata sentinel with the page strings of one language.
type Locale struct {
	Name         string
	NotAvailable string
	Messages     Messages
}

var locales = map[string]*Locale{
	"es": {
		Name:         "es",
		NotAvailable: metadata.DefaultNotAvailable,
		Messages: Messages{
			Title:            "Instancia EC2",
			Subtitle:         "Instancia que atendió esta solicitud detrás del balanceador de carga",
			InstanceID:       "ID de instancia",
			PublicIP:         "IP pública",
			AvailabilityZone: "Zona de disponibilidad",
			InstanceType:     "Tipo de instancia",
			LastUpdated:      "Última actualización",
			Loading:          "Cargando...",
			Refresh:          "Actualizar",
			Refreshed:        "Actualizado",
			Error:            "Error",
			Details:          "Detalles",
			DetailsText:      "Este panel muestra la instancia EC2 actual que está sirviendo tu solicitud. Si estás usando un Application Load Balancer (ALB), al actualizar deberías ver diferentes Instance IDs cuando el balanceador distribuye el tráfico entre múltiples instancias.",
			AWSBadge:         "AWS",
			SimulatedBadge:   "Simulado",
		},
	},
	"en": {
		Name:         "en",
		NotAvailable: "Not available",
		Messages: Messages{
			Title:            "EC2 Instance",
			Subtitle:         "Instance that served this request behind the load balancer",
			InstanceID:       "Instance ID",
			PublicIP:         "Public IP",
			AvailabilityZone: "Availability zone",
			InstanceType:     "Instance type",
			LastUpdated:      "Last updated",
			Loading:          "Loading...",
			Refresh:          "Refresh",
			Refreshed:        "Updated",
			Error:            "Error",
			Details:          "Details",
			DetailsText:      "This panel shows the EC2 instance that is serving your request. Behind an Application Load Balancer (ALB), refreshing should show different instance IDs as the balancer spreads traffic across instances.",
			AWSBadge:         "AWS",
			SimulatedBadge:   "Simulated",
		},
	},
}

// LookupLocale returns the locale registered under name.
func LookupLocale(name string) (*Locale, error) {
	l, ok := locales[name]
	if !ok {
		return nil, fmt.Errorf("unknown locale %q, expected one of %v", name, LocaleNames())
	}
	return l, nil
}

// LocaleNames returns the supported locale names in sorted order.
func LocaleNames() []string {
	names := make([]string, 0, len(locales))
	for name := range locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
