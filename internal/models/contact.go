// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ContactInfo is the singleton business contact record. There is exactly
// one per deployment; it is read and updated but never created through
// the public interface (backends create it implicitly when absent).
type ContactInfo struct {
	ID               string    `json:"id"`
	PhotographerName string    `json:"photographer_name"`
	Phone            string    `json:"phone"`
	Location         string    `json:"location"`
	Email            *string   `json:"email"`
	InstagramURL     *string   `json:"instagram_url"`
	FacebookURL      *string   `json:"facebook_url"`
	WhatsappURL      *string   `json:"whatsapp_url"`
	UpdatedAt        time.Time `json:"updated_at"`
}
