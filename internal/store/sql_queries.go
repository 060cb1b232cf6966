// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createUser = `
		INSERT INTO users (username, email, full_name, password_hash, google_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, username, email, full_name, password_hash, google_id, created_at;`

	findUserByEmail = `
		SELECT user_id, username, email, full_name, password_hash, google_id, created_at
		FROM users
		WHERE email = $1;`

	findUserByID = `
		SELECT user_id, username, email, full_name, password_hash, google_id, created_at
		FROM users
		WHERE user_id = $1;`

	userExists = `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = $1 OR username = $2
		);`

	findProfileByID = `
		SELECT
			u.user_id,
			u.username,
			u.email,
			u.full_name,
			u.social_media_platform,
			u.engagement_rate,
			u.niche,
			u.bio,
			(SELECT COUNT(*) FROM follows f WHERE f.following_id = u.user_id) AS follower_count
		FROM users u
		WHERE u.user_id = $1;`

	getAllProfiles = `
		SELECT
			u.user_id,
			u.username,
			u.email,
			u.full_name,
			u.social_media_platform,
			u.engagement_rate,
			u.niche,
			u.bio,
			(SELECT COUNT(*) FROM follows f WHERE f.following_id = u.user_id) AS follower_count
		FROM users u
		ORDER BY u.user_id;`

	updateUserPassword = `
		UPDATE users
		SET password_hash = $2
		WHERE email = $1;`

	linkGoogleID = `
		UPDATE users
		SET google_id = $2
		WHERE user_id = $1;`
)

const (
	upsertReset = `
		INSERT INTO password_resets (email, otp_code, expires_at, attempts, validated)
		VALUES ($1, $2, $3, 0, false)
		ON CONFLICT (email) DO UPDATE
		SET otp_code = EXCLUDED.otp_code,
			expires_at = EXCLUDED.expires_at,
			attempts = 0,
			validated = false,
			created_at = NOW();`

	findReset = `
		SELECT email, otp_code, expires_at, attempts, validated, created_at
		FROM password_resets
		WHERE email = $1;`

	registerFailedResetAttempt = `
		UPDATE password_resets
		SET attempts = attempts + 1
		WHERE email = $1
		RETURNING attempts;`

	markResetValidated = `
		UPDATE password_resets
		SET validated = true
		WHERE email = $1;`

	deleteReset = `
		DELETE FROM password_resets
		WHERE email = $1;`

	purgeExpiredResets = `
		DELETE FROM password_resets
		WHERE expires_at < $1;`
)

const (
	follow = `
		INSERT INTO follows (follower_id, following_id)
		VALUES ($1, $2);`

	unfollow = `
		DELETE FROM follows
		WHERE follower_id = $1 AND following_id = $2;`

	getFollowers = `
		SELECT u.user_id, u.username, u.full_name
		FROM follows f
		JOIN users u ON u.user_id = f.follower_id
		WHERE f.following_id = $1
		ORDER BY u.username;`

	getFollowing = `
		SELECT u.user_id, u.username, u.full_name
		FROM follows f
		JOIN users u ON u.user_id = f.following_id
		WHERE f.follower_id = $1
		ORDER BY u.username;`
)

const (
	createPost = `
		INSERT INTO posts (user_id, body, image_url)
		VALUES ($1, $2, $3)
		RETURNING post_id, user_id, body, image_url, created_at, updated_at;`

	findPostByID = `
		SELECT
			p.post_id,
			p.user_id,
			p.body,
			p.image_url,
			(SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.post_id) AS likes,
			p.created_at,
			p.updated_at
		FROM posts p
		WHERE p.post_id = $1;`

	deletePost = `
		DELETE FROM posts
		WHERE post_id = $1 AND user_id = $2;`

	postLiked = `
		SELECT EXISTS (
			SELECT 1 FROM post_likes WHERE post_id = $1 AND user_id = $2
		);`

	likePost = `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;`

	unlikePost = `
		DELETE FROM post_likes
		WHERE post_id = $1 AND user_id = $2;`

	timelinePosts = `
		SELECT
			p.post_id,
			p.user_id,
			p.body,
			p.image_url,
			(SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.post_id) AS likes,
			p.created_at,
			p.updated_at
		FROM posts p
		WHERE p.user_id = $1
			OR p.user_id IN (SELECT following_id FROM follows WHERE follower_id = $1)
		ORDER BY p.created_at DESC;`
)
