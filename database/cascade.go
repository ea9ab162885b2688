package database

import (
	"pharmacy-pos-backend/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// The delete helpers below remove children explicitly inside one transaction
// so cascades hold even where the engine does not enforce foreign keys.

// DeleteSale removes a sale and its payments
func DeleteSale(db *gorm.DB, saleID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return deleteSales(tx, []uint{saleID})
	})
}

// DeleteStore removes a store, its sales and their payments
func DeleteStore(db *gorm.DB, storeID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return deleteStores(tx, []uint{storeID})
	})
}

// DeleteUser removes a user with their stores and login activity
func DeleteUser(db *gorm.DB, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var storeIDs []uint
		if err := tx.Model(&models.Store{}).Where("owner_id = ?", userID).Pluck("id", &storeIDs).Error; err != nil {
			return errors.Wrap(err, "failed to list user stores")
		}
		if err := deleteStores(tx, storeIDs); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.LoginActivity{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete login activity")
		}
		if err := tx.Delete(&models.User{}, userID).Error; err != nil {
			return errors.Wrap(err, "failed to delete user")
		}
		return nil
	})
}

func deleteStores(tx *gorm.DB, storeIDs []uint) error {
	if len(storeIDs) == 0 {
		return nil
	}

	var saleIDs []uint
	if err := tx.Model(&models.Sales{}).Where("store_id IN ?", storeIDs).Pluck("id", &saleIDs).Error; err != nil {
		return errors.Wrap(err, "failed to list store sales")
	}
	if err := deleteSales(tx, saleIDs); err != nil {
		return err
	}
	if err := tx.Where("id IN ?", storeIDs).Delete(&models.Store{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete stores")
	}
	return nil
}

func deleteSales(tx *gorm.DB, saleIDs []uint) error {
	if len(saleIDs) == 0 {
		return nil
	}
	if err := tx.Where("sale_id IN ?", saleIDs).Delete(&models.Payment{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete payments")
	}
	if err := tx.Where("id IN ?", saleIDs).Delete(&models.Sales{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete sales")
	}
	return nil
}
