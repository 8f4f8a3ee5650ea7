package repository

import "fmt"

// Key builders for the storefront's record namespaces. Orders and wishlist
// entries each have a primary record plus an owner-prefixed index record;
// the two are written separately with no atomicity between them.

func UserKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

func ProductKey(productID string) string {
	return fmt.Sprintf("product:%s", productID)
}

const ProductPrefix = "product:"

func ReviewKey(productID, reviewID string) string {
	return fmt.Sprintf("review:product:%s:%s", productID, reviewID)
}

func ReviewPrefix(productID string) string {
	return fmt.Sprintf("review:product:%s:", productID)
}

func OrderKey(orderID string) string {
	return fmt.Sprintf("order:%s", orderID)
}

func UserOrderKey(userID, orderID string) string {
	return fmt.Sprintf("user:%s:order:%s", userID, orderID)
}

func UserOrderPrefix(userID string) string {
	return fmt.Sprintf("user:%s:order:", userID)
}

func WishlistKey(userID, productID string) string {
	return fmt.Sprintf("wishlist:%s:%s", userID, productID)
}

func WishlistPrefix(userID string) string {
	return fmt.Sprintf("wishlist:%s:", userID)
}

func CredentialKey(email string) string {
	return fmt.Sprintf("auth:email:%s", email)
}
