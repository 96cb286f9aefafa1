// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package types

// UserTier is the subscription tier of a user.
type UserTier string

// User tiers.
const (
	UserTierFree UserTier = "free"
	UserTierPro  UserTier = "pro"
)

// User is the authenticated user.
type User struct {
	ID        string   `json:"id"`
	Email     *string  `json:"email,omitempty"`
	Name      *string  `json:"name,omitempty"`
	AvatarURL *string  `json:"avatar_url,omitempty"`
	Tier      UserTier `json:"tier"`
}

// UserFavorite links a user to a favorited skill.
type UserFavorite struct {
	SkillID   string `json:"skill_id"`
	CreatedAt string `json:"created_at"`
}

// FavoritesResponse is the response of the favorites list endpoint.
type FavoritesResponse struct {
	Skills []Skill `json:"skills"`
}
