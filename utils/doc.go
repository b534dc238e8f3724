// Package utils provides shared time formatting helpers.
package utils
